package services

import (
	"sync"
	"time"

	"cargolink_backend/internal/models"
	"cargolink_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory фейки репозиториев для юнит-тестов сервисов.
// Порядок выдачи - created_at DESC, как в контракте настоящих репозиториев.

type fakeListingRepo struct {
	mu       sync.Mutex
	listings []*models.Listing

	// выполняется перед записью статуса - для имитации гонки двух админов
	beforeStatusWrite func()
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{}
}

func (r *fakeListingRepo) Create(listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().Add(time.Duration(len(r.listings)) * time.Millisecond)
	}
	r.listings = append(r.listings, listing)
	return nil
}

func (r *fakeListingRepo) FindByID(id string) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.listings {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, repositories.ErrListingNotFound
}

func (r *fakeListingRepo) FindByStatus(status models.ListingStatus) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Listing
	// новые первыми
	for i := len(r.listings) - 1; i >= 0; i-- {
		if r.listings[i].Status == status {
			result = append(result, *r.listings[i])
		}
	}
	return result, nil
}

func (r *fakeListingRepo) FindByOwner(userID string) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Listing
	for i := len(r.listings) - 1; i >= 0; i-- {
		if r.listings[i].UserID == userID {
			result = append(result, *r.listings[i])
		}
	}
	return result, nil
}

func (r *fakeListingRepo) FindApprovedByOwner(userID string) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Listing
	for i := len(r.listings) - 1; i >= 0; i-- {
		if r.listings[i].UserID == userID && r.listings[i].Status == models.ListingStatusApproved {
			result = append(result, *r.listings[i])
		}
	}
	return result, nil
}

func (r *fakeListingRepo) UpdateStatus(id string, from, to models.ListingStatus) error {
	if r.beforeStatusWrite != nil {
		r.beforeStatusWrite()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.listings {
		if l.ID == id {
			if l.Status != from {
				return repositories.ErrStaleListingStatus
			}
			l.Status = to
			return nil
		}
	}
	return repositories.ErrListingNotFound
}

func (r *fakeListingRepo) CountStalePending(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, l := range r.listings {
		if l.Status == models.ListingStatusPending && l.CreatedAt.Before(cutoff) {
			count++
		}
	}
	return count, nil
}

func (r *fakeListingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.listings {
		if l.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return nil
		}
	}
	return repositories.ErrListingNotFound
}

// ---------------------------------------------------------------

type fakeRatingRepo struct {
	mu      sync.Mutex
	ratings []*models.Rating

	summariesCalls int // сколько раз звали батчевый метод
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{}
}

func (r *fakeRatingRepo) Create(rating *models.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.ratings {
		if existing.RaterUserID == rating.RaterUserID && existing.RatedUserID == rating.RatedUserID {
			return repositories.ErrDuplicateRating
		}
	}
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}
	r.ratings = append(r.ratings, rating)
	return nil
}

func (r *fakeRatingRepo) FindByRated(ratedUserID string) ([]models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Rating
	for i := len(r.ratings) - 1; i >= 0; i-- {
		if r.ratings[i].RatedUserID == ratedUserID {
			result = append(result, *r.ratings[i])
		}
	}
	return result, nil
}

func (r *fakeRatingRepo) SummaryForUser(ratedUserID string) (*models.RatingSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summaryLocked(ratedUserID), nil
}

func (r *fakeRatingRepo) summaryLocked(ratedUserID string) *models.RatingSummary {
	var sum, count int64
	for _, rating := range r.ratings {
		if rating.RatedUserID == ratedUserID {
			sum += int64(rating.Rating)
			count++
		}
	}
	if count == 0 {
		return &models.RatingSummary{}
	}
	return &models.RatingSummary{
		AverageRating: float64(sum) / float64(count),
		TotalRatings:  count,
	}
}

func (r *fakeRatingRepo) SummariesForUsers(ratedUserIDs []string) (map[string]models.RatingSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summariesCalls++
	result := make(map[string]models.RatingSummary, len(ratedUserIDs))
	for _, id := range ratedUserIDs {
		summary := r.summaryLocked(id)
		if summary.TotalRatings > 0 {
			result[id] = *summary
		}
	}
	return result, nil
}

// ---------------------------------------------------------------

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile // keyed by user ID

	batchCalls int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) CreateInTx(tx *gorm.DB, profile *models.Profile) error {
	return r.Create(profile)
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUserIDs(userIDs []string) ([]models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batchCalls++
	var result []models.Profile
	for _, id := range userIDs {
		if p, ok := r.profiles[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *fakeProfileRepo) Update(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = profile
	return nil
}

// ---------------------------------------------------------------

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) addUser(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[id] = &models.User{BaseModel: models.BaseModel{ID: id}, Email: id + "@test.local"}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) CreateInTx(tx *gorm.DB, user *models.User) error {
	return r.Create(user)
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAdminEmails() ([]string, error) {
	return nil, nil
}

func (r *fakeUserRepo) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// ---------------------------------------------------------------

// fakeEmailProvider записывает отправленные решения модерации
type fakeEmailProvider struct {
	decisions chan string
}

func newFakeEmailProvider() *fakeEmailProvider {
	return &fakeEmailProvider{decisions: make(chan string, 16)}
}

func (p *fakeEmailProvider) SendModerationDecision(to string, listingTitle string, decision models.ListingStatus) error {
	p.decisions <- string(decision)
	return nil
}

func (p *fakeEmailProvider) SendPendingReminder(to []string, pendingCount int64) error {
	return nil
}

func (p *fakeEmailProvider) Close() error { return nil }
