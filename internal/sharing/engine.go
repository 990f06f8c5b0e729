package sharing

import (
	"errors"
	"strings"
	"time"

	"github.com/timecapsule-dev/timecapsule/internal/models"
	"gorm.io/gorm"
)

// Engine decides which rows a viewer may see and polices every mutation with
// the same filters its listings use. It holds no state beyond the database
// handle, so a new Engine per request is cheap.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// InboxView selects which side of the shared_items table a listing covers.
type InboxView string

const (
	ViewReceived InboxView = "received"
	ViewSent     InboxView = "sent"
)

// NormalizeEmail prepares an address for case- and whitespace-insensitive
// matching. Emails are stored normalized, so lookups normalize too.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Owned listings ---
//
// Soft-deleted rows never appear here, regardless of caller. Per-table
// ordering matches what the capsule pages always showed: journal and
// favorites newest-first, bucket list oldest-first, letters by unlock date
// descending.

func (e *Engine) ListJournal(userID uint) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := e.db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, storeErr(err)
}

func (e *Engine) ListBucketList(userID uint) ([]models.BucketListItem, error) {
	var items []models.BucketListItem
	err := e.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, storeErr(err)
}

func (e *Engine) ListFutureLetters(userID uint) ([]models.FutureLetter, error) {
	var letters []models.FutureLetter
	err := e.db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("unlock_date DESC").
		Find(&letters).Error
	return letters, storeErr(err)
}

func (e *Engine) ListFavorites(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := e.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, storeErr(err)
}

// --- Share content fetches ---
//
// These deliberately skip the soft-delete filter: a soft-deleted source item
// must stay readable through existing shares. The viewer must be the owner or
// a party to a share referencing the row.

func (e *Engine) GetJournalContent(viewerID, id uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := e.db.First(&entry, id).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := e.authorizeContent(viewerID, entry.UserID, id, models.ItemTypeJournal); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (e *Engine) GetLetterContent(viewerID, id uint) (*models.FutureLetter, error) {
	var letter models.FutureLetter
	if err := e.db.First(&letter, id).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := e.authorizeContent(viewerID, letter.UserID, id, models.ItemTypeLetter); err != nil {
		return nil, err
	}
	return &letter, nil
}

func (e *Engine) authorizeContent(viewerID, ownerID, sourceItemID uint, itemType string) error {
	if viewerID == ownerID {
		return nil
	}

	var count int64
	err := e.db.Model(&models.SharedItem{}).
		Where("source_item_id = ? AND item_type = ? AND (sender_id = ? OR recipient_id = ?)",
			sourceItemID, itemType, viewerID, viewerID).
		Count(&count).Error

	if err != nil {
		return storeErr(err)
	}

	if count == 0 {
		return ErrForbidden
	}

	return nil
}

// --- Soft deletes ---
//
// Flag flips, never row removal: shares referencing the item keep working.
// Deleting an already-deleted row is a no-op success.

func (e *Engine) SoftDeleteJournal(userID, id uint) error {
	return e.softDelete(&models.JournalEntry{}, userID, id)
}

func (e *Engine) SoftDeleteLetter(userID, id uint) error {
	return e.softDelete(&models.FutureLetter{}, userID, id)
}

func (e *Engine) softDelete(model interface{}, userID, id uint) error {
	res := e.db.Model(model).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_deleted", true)

	if res.Error != nil {
		return storeErr(res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// --- Hard deletes for the tables without a soft-delete column ---

func (e *Engine) DeleteBucketListItem(userID, id uint) error {
	return e.deleteOwned(&models.BucketListItem{}, userID, id)
}

func (e *Engine) DeleteFavorite(userID, id uint) error {
	return e.deleteOwned(&models.Favorite{}, userID, id)
}

func (e *Engine) deleteOwned(model interface{}, userID, id uint) error {
	res := e.db.Where("id = ? AND user_id = ?", id, userID).Delete(model)

	if res.Error != nil {
		return storeErr(res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// --- Capsules ---

// CapsuleForMember returns the capsule if the viewer is its owner or a
// member, ErrForbidden otherwise.
func (e *Engine) CapsuleForMember(userID, capsuleID uint) (*models.Capsule, error) {
	var capsule models.Capsule
	if err := e.db.First(&capsule, capsuleID).Error; err != nil {
		return nil, storeErr(err)
	}

	if capsule.OwnerID == userID {
		return &capsule, nil
	}

	var count int64
	err := e.db.Model(&models.CapsuleMembership{}).
		Where("capsule_id = ? AND user_id = ?", capsuleID, userID).
		Count(&count).Error

	if err != nil {
		return nil, storeErr(err)
	}

	if count == 0 {
		return nil, ErrForbidden
	}

	return &capsule, nil
}

func (e *Engine) ListCapsuleJournal(userID, capsuleID uint) ([]models.CapsuleJournal, error) {
	if err := e.requireFeature(userID, capsuleID, featureJournal); err != nil {
		return nil, err
	}
	var entries []models.CapsuleJournal
	err := e.db.
		Where("capsule_id = ?", capsuleID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, storeErr(err)
}

func (e *Engine) ListCapsuleBucketList(userID, capsuleID uint) ([]models.CapsuleBucketItem, error) {
	if err := e.requireFeature(userID, capsuleID, featureBucketList); err != nil {
		return nil, err
	}
	var items []models.CapsuleBucketItem
	err := e.db.
		Where("capsule_id = ?", capsuleID).
		Order("created_at ASC").
		Find(&items).Error
	return items, storeErr(err)
}

func (e *Engine) ListCapsuleLetters(userID, capsuleID uint) ([]models.CapsuleLetter, error) {
	if err := e.requireFeature(userID, capsuleID, featureLetters); err != nil {
		return nil, err
	}
	var letters []models.CapsuleLetter
	err := e.db.
		Where("capsule_id = ?", capsuleID).
		Order("unlock_date DESC").
		Find(&letters).Error
	return letters, storeErr(err)
}

func (e *Engine) ListCapsuleFavorites(userID, capsuleID uint) ([]models.CapsuleFavorite, error) {
	if err := e.requireFeature(userID, capsuleID, featureFavorites); err != nil {
		return nil, err
	}
	var favorites []models.CapsuleFavorite
	err := e.db.
		Where("capsule_id = ?", capsuleID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, storeErr(err)
}

func (e *Engine) CreateCapsuleJournal(userID, capsuleID uint, entry *models.CapsuleJournal) error {
	if err := e.requireFeature(userID, capsuleID, featureJournal); err != nil {
		return err
	}
	entry.CapsuleID = capsuleID
	entry.UserID = userID
	return storeErr(e.db.Create(entry).Error)
}

func (e *Engine) CreateCapsuleBucketItem(userID, capsuleID uint, item *models.CapsuleBucketItem) error {
	if err := e.requireFeature(userID, capsuleID, featureBucketList); err != nil {
		return err
	}
	item.CapsuleID = capsuleID
	item.UserID = userID
	return storeErr(e.db.Create(item).Error)
}

func (e *Engine) CreateCapsuleLetter(userID, capsuleID uint, letter *models.CapsuleLetter) error {
	if err := e.requireFeature(userID, capsuleID, featureLetters); err != nil {
		return err
	}
	letter.CapsuleID = capsuleID
	letter.UserID = userID
	return storeErr(e.db.Create(letter).Error)
}

func (e *Engine) CreateCapsuleFavorite(userID, capsuleID uint, favorite *models.CapsuleFavorite) error {
	if err := e.requireFeature(userID, capsuleID, featureFavorites); err != nil {
		return err
	}
	favorite.CapsuleID = capsuleID
	favorite.UserID = userID
	return storeErr(e.db.Create(favorite).Error)
}

func (e *Engine) DeleteCapsuleJournal(userID, capsuleID, id uint) error {
	if err := e.requireFeature(userID, capsuleID, featureJournal); err != nil {
		return err
	}
	return e.deleteCapsuleRow(&models.CapsuleJournal{}, capsuleID, id)
}

func (e *Engine) DeleteCapsuleBucketItem(userID, capsuleID, id uint) error {
	if err := e.requireFeature(userID, capsuleID, featureBucketList); err != nil {
		return err
	}
	return e.deleteCapsuleRow(&models.CapsuleBucketItem{}, capsuleID, id)
}

// DeleteCapsuleLetter removes a capsule letter for every member. Locked
// letters cannot be deleted.
func (e *Engine) DeleteCapsuleLetter(userID, capsuleID, id uint, now time.Time) error {
	if err := e.requireFeature(userID, capsuleID, featureLetters); err != nil {
		return err
	}

	var letter models.CapsuleLetter
	err := e.db.Where("id = ? AND capsule_id = ?", id, capsuleID).First(&letter).Error
	if err != nil {
		return storeErr(err)
	}

	if IsLocked(&letter.UnlockDate, now) {
		return ErrLockedItem
	}

	return storeErr(e.db.Delete(&letter).Error)
}

func (e *Engine) DeleteCapsuleFavorite(userID, capsuleID, id uint) error {
	if err := e.requireFeature(userID, capsuleID, featureFavorites); err != nil {
		return err
	}
	return e.deleteCapsuleRow(&models.CapsuleFavorite{}, capsuleID, id)
}

func (e *Engine) deleteCapsuleRow(model interface{}, capsuleID, id uint) error {
	res := e.db.Where("id = ? AND capsule_id = ?", id, capsuleID).Delete(model)

	if res.Error != nil {
		return storeErr(res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

type capsuleFeature int

const (
	featureJournal capsuleFeature = iota
	featureBucketList
	featureLetters
	featureFavorites
)

func (e *Engine) requireFeature(userID, capsuleID uint, feature capsuleFeature) error {
	capsule, err := e.CapsuleForMember(userID, capsuleID)
	if err != nil {
		return err
	}

	var enabled bool
	switch feature {
	case featureJournal:
		enabled = capsule.HasJournal
	case featureBucketList:
		enabled = capsule.HasBucketList
	case featureLetters:
		enabled = capsule.HasFutureLetters
	case featureFavorites:
		enabled = capsule.HasFavorites
	}

	if !enabled {
		return ErrForbidden
	}

	return nil
}

// --- Inbox ---

// ListInbox returns the viewer's side of shared_items, newest first, with
// sender and recipient profiles attached for display. Rows the viewer has
// dismissed are hidden; the other side's flag has no effect here.
func (e *Engine) ListInbox(userID uint, view InboxView) ([]models.SharedItem, error) {
	q := e.db.Preload("Sender").Preload("Recipient")

	switch view {
	case ViewSent:
		q = q.Where("sender_id = ? AND sender_deleted = ?", userID, false)
	case ViewReceived:
		q = q.Where("recipient_id = ? AND recipient_deleted = ?", userID, false)
	default:
		return nil, errors.New("unknown inbox view")
	}

	var items []models.SharedItem
	err := q.Order("created_at DESC").Find(&items).Error
	return items, storeErr(err)
}

// DeleteInboxCopy flips the caller's own dismissal flag on a share. The other
// party's copy and the source item are untouched.
func (e *Engine) DeleteInboxCopy(userID, itemID uint) error {
	var item models.SharedItem
	if err := e.db.First(&item, itemID).Error; err != nil {
		return storeErr(err)
	}

	var column string
	switch userID {
	case item.SenderID:
		column = "sender_deleted"
	case item.RecipientID:
		column = "recipient_deleted"
	default:
		return ErrForbidden
	}

	return storeErr(e.db.Model(&item).Update(column, true).Error)
}

// --- Share creation ---

// CreateShare resolves the recipient by normalized email and inserts the
// shared_items row. This is the privileged path: no client-facing route can
// write a row naming another user. The sender must own the source item.
func (e *Engine) CreateShare(senderID uint, recipientEmail string, sourceItemID uint, itemType string, unlockDate *time.Time, note string) (*models.SharedItem, error) {
	if itemType != models.ItemTypeJournal && itemType != models.ItemTypeLetter {
		return nil, errors.New("invalid item_type")
	}

	var recipient models.User
	err := e.db.Where("email = ?", NormalizeEmail(recipientEmail)).First(&recipient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}

	if err := e.requireSourceOwnership(senderID, sourceItemID, itemType); err != nil {
		return nil, err
	}

	item := models.SharedItem{
		SenderID:     senderID,
		RecipientID:  recipient.ID,
		SourceItemID: sourceItemID,
		ItemType:     itemType,
		UnlockDate:   unlockDate,
		PersonalNote: note,
	}

	if err := e.db.Create(&item).Error; err != nil {
		return nil, storeErr(err)
	}

	item.Recipient = recipient
	return &item, nil
}

func (e *Engine) requireSourceOwnership(senderID, sourceItemID uint, itemType string) error {
	var count int64
	var err error

	if itemType == models.ItemTypeLetter {
		err = e.db.Model(&models.FutureLetter{}).
			Where("id = ? AND user_id = ?", sourceItemID, senderID).
			Count(&count).Error
	} else {
		err = e.db.Model(&models.JournalEntry{}).
			Where("id = ? AND user_id = ?", sourceItemID, senderID).
			Count(&count).Error
	}

	if err != nil {
		return storeErr(err)
	}

	if count == 0 {
		return ErrForbidden
	}

	return nil
}
