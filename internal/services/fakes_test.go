package services

import (
	"context"
	"sort"
	"sync"

	"internship_backend/internal/models"
	"internship_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the storage-layer guarantees
// the real implementations get from Postgres: unique email, unique
// (internship, student) pair, upsert keyed by student_id.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeInternshipRepo struct {
	mu          sync.Mutex
	internships map[string]*models.Internship
}

func newFakeInternshipRepo() *fakeInternshipRepo {
	return &fakeInternshipRepo{internships: make(map[string]*models.Internship)}
}

func (f *fakeInternshipRepo) Create(ctx context.Context, internship *models.Internship) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if internship.ID == "" {
		internship.ID = uuid.NewString()
	}
	clone := *internship
	f.internships[internship.ID] = &clone
	return nil
}

func (f *fakeInternshipRepo) FindByID(ctx context.Context, id string) (*models.Internship, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	internship, ok := f.internships[id]
	if !ok {
		return nil, repositories.ErrInternshipNotFound
	}
	clone := *internship
	return &clone, nil
}

func (f *fakeInternshipRepo) FindAll(ctx context.Context) ([]models.Internship, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Internship
	for _, internship := range f.internships {
		all = append(all, *internship)
	}
	return all, nil
}

func (f *fakeInternshipRepo) CountByLocation(ctx context.Context) ([]models.LocationCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byLoc := make(map[models.Location]int64)
	for _, internship := range f.internships {
		byLoc[internship.Location]++
	}
	counts := make([]models.LocationCount, 0, len(byLoc))
	for loc, n := range byLoc {
		counts = append(counts, models.LocationCount{City: loc.City, State: loc.State, TotalInternships: n})
	}
	sortLocationCounts(counts)
	return counts, nil
}

// sortLocationCounts mirrors the repository's ORDER BY state, city.
func sortLocationCounts(counts []models.LocationCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].State != counts[j].State {
			return counts[i].State < counts[j].State
		}
		return counts[i].City < counts[j].City
	})
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	users        *fakeUserRepo
	internships  *fakeInternshipRepo
}

func newFakeApplicationRepo(users *fakeUserRepo, internships *fakeInternshipRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*models.Application),
		users:        users,
		internships:  internships,
	}
}

func (f *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.applications {
		if existing.InternshipID == application.InternshipID && existing.StudentID == application.StudentID {
			return repositories.ErrApplicationExists
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	clone := *application
	f.applications[application.ID] = &clone
	return nil
}

func (f *fakeApplicationRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	f.mu.Lock()
	application, ok := f.applications[id]
	f.mu.Unlock()
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	clone := *application
	f.populate(ctx, &clone)
	return &clone, nil
}

func (f *fakeApplicationRepo) FindByInternship(ctx context.Context, internshipID string) ([]models.Application, error) {
	f.mu.Lock()
	var matched []models.Application
	for _, application := range f.applications {
		if application.InternshipID == internshipID {
			matched = append(matched, *application)
		}
	}
	f.mu.Unlock()
	for i := range matched {
		f.populate(ctx, &matched[i])
	}
	return matched, nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Status = status
	return nil
}

// populate mimics the gorm Preload("Student")/Preload("Internship")
// reads of the real repository.
func (f *fakeApplicationRepo) populate(ctx context.Context, application *models.Application) {
	if f.users != nil {
		if student, err := f.users.FindByID(ctx, application.StudentID); err == nil {
			application.Student = student
		}
	}
	if f.internships != nil {
		if internship, err := f.internships.FindByID(ctx, application.InternshipID); err == nil {
			application.Internship = internship
		}
	}
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile // keyed by student id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.profiles[profile.StudentID]; ok {
		profile.ID = existing.ID
		if profile.ResumeURL == "" {
			profile.ResumeURL = existing.ResumeURL
		}
	} else if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	clone := *profile
	f.profiles[profile.StudentID] = &clone
	return nil
}

func (f *fakeProfileRepo) FindByStudentID(ctx context.Context, studentID string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[studentID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

// recordingNotifier records notification calls synchronously.
type recordingNotifier struct {
	mu          sync.Mutex
	welcomes    []string
	loginAlerts []string
}

func (n *recordingNotifier) SendWelcome(ctx context.Context, to, name, role string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.welcomes = append(n.welcomes, to)
}

func (n *recordingNotifier) SendLoginAlert(ctx context.Context, to, name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.loginAlerts = append(n.loginAlerts, to)
}
