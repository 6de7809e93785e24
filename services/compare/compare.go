// Package compare manages the bounded comparison set: up to three catalog
// items a visitor lines up side by side. Signed-in users get Postgres rows,
// anonymous visitors get a Redis blob keyed by their browser-minted client id.
package compare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/utils/cache"
)

var (
	// ErrCompareFull is returned when a 4th distinct item is added. The set
	// never evicts silently.
	ErrCompareFull = fmt.Errorf("you can compare up to %d items at a time", model.MaxCompareItems)

	ErrBadItemType  = errors.New("item type must be course or scholarship")
	ErrItemNotFound = errors.New("item not found")
	ErrNoOwner      = errors.New("sign in or provide a client id to use comparison")
)

// anonTTL bounds how long an abandoned anonymous comparison set lives.
const anonTTL = 7 * 24 * time.Hour

// AnonKeyPrefix namespaces anonymous comparison blobs in Redis. The cron
// sweep scans this prefix.
const AnonKeyPrefix = "compare:anon:"

// Member identifies one item in a comparison set.
type Member struct {
	ItemType string `json:"item_type"`
	ItemID   uint   `json:"item_id"`
}

// Set is a resolved comparison set: the member keys plus the denormalized
// rows, so the comparison page renders from one response.
type Set struct {
	Members      []Member            `json:"members"`
	Courses      []model.Course      `json:"courses"`
	Scholarships []model.Scholarship `json:"scholarships"`
}

// Owner is either a signed-in user (UserID set) or an anonymous browser
// (ClientID set). UserID wins when both are present.
type Owner struct {
	UserID   uint
	ClientID string
}

func (o Owner) valid() bool {
	return o.UserID != 0 || o.ClientID != ""
}

// Service coordinates comparison-set state across Postgres and Redis.
type Service struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewService creates a comparison service.
func NewService(db *gorm.DB, redisCache *cache.RedisCache) *Service {
	return &Service{db: db, cache: redisCache}
}

// applyAdd returns the member list with m added. A duplicate add returns the
// list unchanged with changed=false. A 4th distinct member returns
// ErrCompareFull.
func applyAdd(members []Member, m Member) ([]Member, bool, error) {
	for _, existing := range members {
		if existing == m {
			return members, false, nil
		}
	}
	if len(members) >= model.MaxCompareItems {
		return members, false, ErrCompareFull
	}
	return append(members, m), true, nil
}

// applyRemove returns the member list with m removed, preserving order.
// Removing an absent member is a no-op.
func applyRemove(members []Member, m Member) ([]Member, bool) {
	for i, existing := range members {
		if existing == m {
			return append(members[:i:i], members[i+1:]...), true
		}
	}
	return members, false
}

// Add puts an item into the owner's comparison set.
func (s *Service) Add(ctx context.Context, owner Owner, itemType string, itemID uint) error {
	if itemType != model.ItemTypeCourse && itemType != model.ItemTypeScholarship {
		return ErrBadItemType
	}
	if !owner.valid() {
		return ErrNoOwner
	}
	if err := s.itemExists(ctx, itemType, itemID); err != nil {
		return err
	}

	if owner.UserID != 0 {
		return s.addForUser(ctx, owner.UserID, itemType, itemID)
	}
	return s.addAnonymous(ctx, owner.ClientID, itemType, itemID)
}

// Remove deletes an item from the owner's comparison set. Removing an item
// that is not in the set succeeds.
func (s *Service) Remove(ctx context.Context, owner Owner, itemType string, itemID uint) error {
	if itemType != model.ItemTypeCourse && itemType != model.ItemTypeScholarship {
		return ErrBadItemType
	}
	if !owner.valid() {
		return ErrNoOwner
	}

	if owner.UserID != 0 {
		return s.db.WithContext(ctx).
			Where("user_id = ? AND item_type = ? AND item_id = ?", owner.UserID, itemType, itemID).
			Delete(&model.CompareSelection{}).Error
	}

	blob, err := s.loadAnonymous(ctx, owner.ClientID)
	if err != nil {
		return err
	}
	members, changed := applyRemove(blob.Members, Member{ItemType: itemType, ItemID: itemID})
	if !changed {
		return nil
	}
	blob.Members = members
	return s.storeAnonymous(ctx, owner.ClientID, blob)
}

// Get resolves the owner's comparison set with full item rows.
func (s *Service) Get(ctx context.Context, owner Owner) (*Set, error) {
	if !owner.valid() {
		return &Set{Members: []Member{}}, nil
	}

	var members []Member
	if owner.UserID != 0 {
		var rows []model.CompareSelection
		err := s.db.WithContext(ctx).
			Where("user_id = ?", owner.UserID).
			Order("created_at ASC").
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load comparison set: %w", err)
		}
		for _, row := range rows {
			members = append(members, Member{ItemType: row.ItemType, ItemID: row.ItemID})
		}
	} else {
		blob, err := s.loadAnonymous(ctx, owner.ClientID)
		if err != nil {
			return nil, err
		}
		// Anonymous sets are served straight from the snapshot.
		return &Set{
			Members:      blob.Members,
			Courses:      blob.Courses,
			Scholarships: blob.Scholarships,
		}, nil
	}

	return s.resolve(ctx, members)
}

func (s *Service) addForUser(ctx context.Context, userID uint, itemType string, itemID uint) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.CompareSelection{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to count comparison set: %w", err)
	}
	if count >= model.MaxCompareItems {
		var existing int64
		s.db.WithContext(ctx).
			Model(&model.CompareSelection{}).
			Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
			Count(&existing)
		if existing > 0 {
			return nil
		}
		return ErrCompareFull
	}

	// Duplicate adds hit the composite unique index; DoNothing turns the
	// conflict into a no-op success.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CompareSelection{
			UserID:   userID,
			ItemType: itemType,
			ItemID:   itemID,
		}).Error
}

// anonBlob is the Redis value for one anonymous comparison set.
type anonBlob struct {
	Members      []Member            `json:"members"`
	Courses      []model.Course      `json:"courses"`
	Scholarships []model.Scholarship `json:"scholarships"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (s *Service) addAnonymous(ctx context.Context, clientID, itemType string, itemID uint) error {
	blob, err := s.loadAnonymous(ctx, clientID)
	if err != nil {
		return err
	}

	members, changed, err := applyAdd(blob.Members, Member{ItemType: itemType, ItemID: itemID})
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	blob.Members = members
	return s.storeAnonymous(ctx, clientID, blob)
}

func (s *Service) loadAnonymous(ctx context.Context, clientID string) (*anonBlob, error) {
	var blob anonBlob
	err := s.cache.GetJSON(ctx, AnonKeyPrefix+clientID, &blob)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return &anonBlob{}, nil
		}
		return nil, fmt.Errorf("failed to load comparison set: %w", err)
	}
	return &blob, nil
}

// storeAnonymous refreshes the snapshot from the catalog before writing, so
// the blob always mirrors the current member list.
func (s *Service) storeAnonymous(ctx context.Context, clientID string, blob *anonBlob) error {
	resolved, err := s.resolve(ctx, blob.Members)
	if err != nil {
		return err
	}
	blob.Courses = resolved.Courses
	blob.Scholarships = resolved.Scholarships
	blob.UpdatedAt = time.Now()

	return s.cache.SetJSON(ctx, AnonKeyPrefix+clientID, blob, anonTTL)
}

// resolve fetches the full rows for the member keys, preserving member order.
func (s *Service) resolve(ctx context.Context, members []Member) (*Set, error) {
	set := &Set{Members: members}
	if set.Members == nil {
		set.Members = []Member{}
	}

	var courseIDs, scholarshipIDs []uint
	for _, m := range members {
		switch m.ItemType {
		case model.ItemTypeCourse:
			courseIDs = append(courseIDs, m.ItemID)
		case model.ItemTypeScholarship:
			scholarshipIDs = append(scholarshipIDs, m.ItemID)
		}
	}

	if len(courseIDs) > 0 {
		err := s.db.WithContext(ctx).Where("id IN ?", courseIDs).Find(&set.Courses).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load compared courses: %w", err)
		}
	}
	if len(scholarshipIDs) > 0 {
		err := s.db.WithContext(ctx).Where("id IN ?", scholarshipIDs).Find(&set.Scholarships).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load compared scholarships: %w", err)
		}
	}
	return set, nil
}

func (s *Service) itemExists(ctx context.Context, itemType string, itemID uint) error {
	var count int64
	var err error
	switch itemType {
	case model.ItemTypeCourse:
		err = s.db.WithContext(ctx).Model(&model.Course{}).Where("id = ?", itemID).Count(&count).Error
	case model.ItemTypeScholarship:
		err = s.db.WithContext(ctx).Model(&model.Scholarship{}).Where("id = ?", itemID).Count(&count).Error
	}
	if err != nil {
		return fmt.Errorf("failed to look up item: %w", err)
	}
	if count == 0 {
		return ErrItemNotFound
	}
	return nil
}
