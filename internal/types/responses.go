package types

import "time"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type JournalEntryResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type BucketListItemResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	IsComplete bool      `json:"is_complete"`
	CreatedAt  time.Time `json:"created_at"`
}

// FutureLetterResponse carries no text while the letter is locked; the
// placeholder row is still listed so the letter's existence stays visible.
type FutureLetterResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text,omitempty"`
	UnlockDate time.Time `json:"unlock_date"`
	Locked     bool      `json:"locked"`
	CreatedAt  time.Time `json:"created_at"`
}

type FavoriteResponse struct {
	ID        uint      `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CapsuleResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	OwnerID          uint   `json:"owner_id"`
	HasJournal       bool   `json:"has_journal"`
	HasBucketList    bool   `json:"has_bucket_list"`
	HasFutureLetters bool   `json:"has_future_letters"`
	HasFavorites     bool   `json:"has_favorites"`
}

type InboxItemResponse struct {
	ID             uint       `json:"id"`
	ItemType       string     `json:"item_type"`
	SourceItemID   uint       `json:"source_item_id"`
	SenderEmail    string     `json:"sender_email"`
	RecipientEmail string     `json:"recipient_email"`
	PersonalNote   string     `json:"personal_note,omitempty"`
	UnlockDate     *time.Time `json:"unlock_date,omitempty"`
	Locked         bool       `json:"locked"`
	CreatedAt      time.Time  `json:"created_at"`
}
