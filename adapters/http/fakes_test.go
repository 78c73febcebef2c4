package http

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/blog"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// memTable is an in-memory stand-in for a table. Rows are copied on the way in
// and out so callers never share state with the store. Lists honour equality
// filters and the page window; search and ordering are left to the Postgres
// integration suite.
type memTable[T any] struct {
	mu       sync.Mutex
	resource string
	rows     []*T
	id       func(*T) uuid.UUID
	key      func(*T) string
	field    func(*T, string) any
	stamp    func(*T, bool, time.Time)
}

func (m *memTable[T]) save(row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if m.key(r) == m.key(row) {
			return apperror.NewConflict(m.resource, "slug", m.key(row))
		}
	}
	m.stamp(row, true, time.Now())
	cp := *row
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memTable[T]) update(row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if m.id(r) == m.id(row) {
			m.stamp(row, false, time.Now())
			cp := *row
			m.rows[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound(m.resource, m.id(row).String())
}

func (m *memTable[T]) delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if m.id(r) == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound(m.resource, id.String())
}

func (m *memTable[T]) find(match func(*T) bool, ident string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if match(r) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound(m.resource, ident)
}

func (m *memTable[T]) findByID(id uuid.UUID) (*T, error) {
	return m.find(func(r *T) bool { return m.id(r) == id }, id.String())
}

func (m *memTable[T]) findByKey(key string) (*T, error) {
	return m.find(func(r *T) bool { return m.key(r) == key }, key)
}

func (m *memTable[T]) list(q listing.Query) ([]*T, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*T
	for _, r := range m.rows {
		ok := true
		for f, v := range q.Filters {
			if m.field(r, f) != v {
				ok = false
				break
			}
		}
		if ok {
			cp := *r
			matched = append(matched, &cp)
		}
	}

	total := len(matched)
	if q.Offset >= total {
		return nil, total, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

// Projects

type fakeProjectRepo struct{ *memTable[project.Project] }

func newFakeProjectRepo() fakeProjectRepo {
	return fakeProjectRepo{&memTable[project.Project]{
		resource: "project",
		id:       func(p *project.Project) uuid.UUID { return p.ID },
		key:      func(p *project.Project) string { return p.Slug },
		field: func(p *project.Project, f string) any {
			switch f {
			case "is_featured":
				return p.IsFeatured
			case "is_published":
				return p.IsPublished
			case "user":
				return p.UserID
			}
			return nil
		},
		stamp: func(p *project.Project, created bool, now time.Time) {
			if created {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
		},
	}}
}

func (r fakeProjectRepo) Save(_ context.Context, p *project.Project) error   { return r.save(p) }
func (r fakeProjectRepo) Update(_ context.Context, p *project.Project) error { return r.update(p) }
func (r fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error       { return r.delete(id) }
func (r fakeProjectRepo) FindBySlug(_ context.Context, slug string) (*project.Project, error) {
	return r.findByKey(slug)
}
func (r fakeProjectRepo) List(_ context.Context, q listing.Query) ([]*project.Project, int, error) {
	return r.list(q)
}

// Profiles

type fakeProfileRepo struct{ *memTable[profile.Profile] }

func newFakeProfileRepo() fakeProfileRepo {
	return fakeProfileRepo{&memTable[profile.Profile]{
		resource: "profile",
		id:       func(p *profile.Profile) uuid.UUID { return p.ID },
		key:      func(p *profile.Profile) string { return p.UserID.String() },
		field: func(p *profile.Profile, f string) any {
			switch f {
			case "is_active":
				return p.IsActive
			case "job_title":
				return p.JobTitle
			}
			return nil
		},
		stamp: func(p *profile.Profile, created bool, now time.Time) {
			if created {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
		},
	}}
}

func (r fakeProfileRepo) Save(_ context.Context, p *profile.Profile) error   { return r.save(p) }
func (r fakeProfileRepo) Update(_ context.Context, p *profile.Profile) error { return r.update(p) }
func (r fakeProfileRepo) Delete(_ context.Context, id uuid.UUID) error       { return r.delete(id) }
func (r fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	return r.findByID(id)
}
func (r fakeProfileRepo) List(_ context.Context, q listing.Query) ([]*profile.Profile, int, error) {
	return r.list(q)
}

// Experiences

type fakeExperienceRepo struct{ *memTable[experience.Experience] }

func newFakeExperienceRepo() fakeExperienceRepo {
	return fakeExperienceRepo{&memTable[experience.Experience]{
		resource: "experience",
		id:       func(e *experience.Experience) uuid.UUID { return e.ID },
		key:      func(e *experience.Experience) string { return e.ID.String() },
		field: func(e *experience.Experience, f string) any {
			switch f {
			case "is_current":
				return e.IsCurrent
			case "company":
				return e.Company
			case "user":
				return e.UserID
			}
			return nil
		},
		stamp: func(e *experience.Experience, created bool, now time.Time) {
			if created {
				e.CreatedAt = now
			}
			e.UpdatedAt = now
		},
	}}
}

func (r fakeExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	return r.save(e)
}
func (r fakeExperienceRepo) Update(_ context.Context, e *experience.Experience) error {
	return r.update(e)
}
func (r fakeExperienceRepo) Delete(_ context.Context, id uuid.UUID) error { return r.delete(id) }
func (r fakeExperienceRepo) FindByID(_ context.Context, id uuid.UUID) (*experience.Experience, error) {
	return r.findByID(id)
}
func (r fakeExperienceRepo) List(_ context.Context, q listing.Query) ([]*experience.Experience, int, error) {
	return r.list(q)
}

// Education

type fakeEducationRepo struct{ *memTable[education.Education] }

func newFakeEducationRepo() fakeEducationRepo {
	return fakeEducationRepo{&memTable[education.Education]{
		resource: "education",
		id:       func(e *education.Education) uuid.UUID { return e.ID },
		key:      func(e *education.Education) string { return e.ID.String() },
		field: func(e *education.Education, f string) any {
			switch f {
			case "institution":
				return e.Institution
			case "degree":
				return e.Degree
			case "user":
				return e.UserID
			}
			return nil
		},
		stamp: func(e *education.Education, created bool, now time.Time) {
			if created {
				e.CreatedAt = now
			}
			e.UpdatedAt = now
		},
	}}
}

func (r fakeEducationRepo) Save(_ context.Context, e *education.Education) error {
	return r.save(e)
}
func (r fakeEducationRepo) Update(_ context.Context, e *education.Education) error {
	return r.update(e)
}
func (r fakeEducationRepo) Delete(_ context.Context, id uuid.UUID) error { return r.delete(id) }
func (r fakeEducationRepo) FindByID(_ context.Context, id uuid.UUID) (*education.Education, error) {
	return r.findByID(id)
}
func (r fakeEducationRepo) List(_ context.Context, q listing.Query) ([]*education.Education, int, error) {
	return r.list(q)
}

// Skills

type fakeSkillRepo struct{ *memTable[skill.Skill] }

func newFakeSkillRepo() fakeSkillRepo {
	return fakeSkillRepo{&memTable[skill.Skill]{
		resource: "skill",
		id:       func(s *skill.Skill) uuid.UUID { return s.ID },
		key:      func(s *skill.Skill) string { return s.UserID.String() + "/" + s.Name },
		field: func(s *skill.Skill, f string) any {
			switch f {
			case "category":
				return string(s.Category)
			case "proficiency":
				return string(s.Proficiency)
			case "is_featured":
				return s.IsFeatured
			case "user":
				return s.UserID
			}
			return nil
		},
		stamp: func(s *skill.Skill, created bool, now time.Time) {
			if created {
				s.CreatedAt = now
			}
			s.UpdatedAt = now
		},
	}}
}

func (r fakeSkillRepo) Save(_ context.Context, s *skill.Skill) error   { return r.save(s) }
func (r fakeSkillRepo) Update(_ context.Context, s *skill.Skill) error { return r.update(s) }
func (r fakeSkillRepo) Delete(_ context.Context, id uuid.UUID) error   { return r.delete(id) }
func (r fakeSkillRepo) FindByID(_ context.Context, id uuid.UUID) (*skill.Skill, error) {
	return r.findByID(id)
}
func (r fakeSkillRepo) List(_ context.Context, q listing.Query) ([]*skill.Skill, int, error) {
	return r.list(q)
}

// Blog

type fakeBlogRepo struct{ *memTable[blog.Post] }

func newFakeBlogRepo() fakeBlogRepo {
	return fakeBlogRepo{&memTable[blog.Post]{
		resource: "blog post",
		id:       func(p *blog.Post) uuid.UUID { return p.ID },
		key:      func(p *blog.Post) string { return p.Slug },
		field: func(p *blog.Post, f string) any {
			switch f {
			case "status":
				return string(p.Status)
			case "is_featured":
				return p.IsFeatured
			case "author":
				return p.AuthorID
			}
			return nil
		},
		stamp: func(p *blog.Post, created bool, now time.Time) {
			if created {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
		},
	}}
}

func (r fakeBlogRepo) Save(_ context.Context, p *blog.Post) error   { return r.save(p) }
func (r fakeBlogRepo) Update(_ context.Context, p *blog.Post) error { return r.update(p) }
func (r fakeBlogRepo) Delete(_ context.Context, id uuid.UUID) error { return r.delete(id) }
func (r fakeBlogRepo) FindBySlug(_ context.Context, slug string) (*blog.Post, error) {
	return r.findByKey(slug)
}
func (r fakeBlogRepo) List(_ context.Context, q listing.Query) ([]*blog.Post, int, error) {
	return r.list(q)
}

func (r fakeBlogRepo) IncrementViews(_ context.Context, slug string, publishedOnly bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.Slug != slug {
			continue
		}
		if publishedOnly && !p.IsPublished() {
			break
		}
		p.ViewsCount++
		return p.ViewsCount, nil
	}
	return 0, apperror.NewNotFound("blog post", slug)
}

// Accounts and sessions

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*user.User{}}
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperror.NewNotFound("user", username)
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("user", id.String())
}

type memorySessions struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemorySessions() *memorySessions {
	return &memorySessions{revoked: map[string]bool{}}
}

func (m *memorySessions) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = true
	return nil
}

func (m *memorySessions) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[tokenID], nil
}

type fakeUploader struct {
	uploaded []string
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	u.uploaded = append(u.uploaded, folder+"/"+publicID)
	return "https://res.cloudinary.com/demo/image/upload/" + folder + "/" + publicID + ".png", nil
}

func (u *fakeUploader) Delete(context.Context, string) error { return nil }

type proberFunc func(ctx context.Context) error

func (f proberFunc) Probe(ctx context.Context) error { return f(ctx) }
