package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DataContext is the single source of truth for portfolio content. After
// Load it is either server-backed or, when any part of the initial fan-out
// failed, in demo mode: the failed kinds carry bundled defaults and every
// mutation that cannot reach the API is replayed against local state so
// the session stays usable. Demo mode is sticky until Reset.
type DataContext struct {
	api    *API
	tokens TokenStore

	mu         sync.Mutex
	token      string
	isAdmin    bool
	isDemoMode bool
	loaded     bool

	profile    Profile
	projects   []Project
	experience []Experience
	education  []Education
	courses    []Course
	skills     []Skill
	interests  []Interest
}

func NewDataContext(baseURL string, httpClient *http.Client, tokens TokenStore) *DataContext {
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	d := &DataContext{
		api:    NewAPI(baseURL, httpClient),
		tokens: tokens,
	}
	if token := tokens.Load(); token != "" {
		d.token = token
		d.isAdmin = true
	}
	return d
}

// Load issues the seven reads in parallel with all-settle semantics: one
// slow or failing endpoint never cancels or blocks the others. Kinds whose
// fetch failed fall back to the bundled defaults and flip demo mode on for
// the whole context.
func (d *DataContext) Load(ctx context.Context) {
	var (
		prof          Profile
		projects      []Project
		experience    []Experience
		education     []Education
		courses       []Course
		skills        []Skill
		interests     []Interest
		profErr       error
		projectsErr   error
		experienceErr error
		educationErr  error
		coursesErr    error
		skillsErr     error
		interestsErr  error
	)

	var g errgroup.Group
	g.Go(func() error { prof, profErr = fetchOne[Profile](ctx, d.api, "/profile"); return nil })
	g.Go(func() error { projects, projectsErr = fetchList[Project](ctx, d.api, "/projects"); return nil })
	g.Go(func() error { experience, experienceErr = fetchList[Experience](ctx, d.api, "/experience"); return nil })
	g.Go(func() error { education, educationErr = fetchList[Education](ctx, d.api, "/education"); return nil })
	g.Go(func() error { courses, coursesErr = fetchList[Course](ctx, d.api, "/courses"); return nil })
	g.Go(func() error { skills, skillsErr = fetchList[Skill](ctx, d.api, "/skills"); return nil })
	g.Go(func() error { interests, interestsErr = fetchList[Interest](ctx, d.api, "/interests"); return nil })
	_ = g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()

	failed := false
	if profErr != nil {
		d.profile = DefaultProfile()
		failed = true
	} else {
		d.profile = prof
	}
	if projectsErr != nil {
		d.projects = DefaultProjects()
		failed = true
	} else {
		d.projects = projects
	}
	if experienceErr != nil {
		d.experience = DefaultExperience()
		failed = true
	} else {
		d.experience = experience
	}
	if educationErr != nil {
		d.education = DefaultEducation()
		failed = true
	} else {
		d.education = education
	}
	if coursesErr != nil {
		d.courses = DefaultCourses()
		failed = true
	} else {
		d.courses = courses
	}
	if skillsErr != nil {
		d.skills = DefaultSkills()
		failed = true
	} else {
		d.skills = skills
	}
	if interestsErr != nil {
		d.interests = DefaultInterests()
		failed = true
	} else {
		d.interests = interests
	}

	d.isDemoMode = failed
	d.loaded = true
}

func (d *DataContext) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

func (d *DataContext) IsDemoMode() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isDemoMode
}

func (d *DataContext) IsAdmin() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isAdmin
}

func (d *DataContext) Profile() Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profile
}

func (d *DataContext) Projects() []Project      { return snapshot(d, &d.projects) }
func (d *DataContext) Experience() []Experience { return snapshot(d, &d.experience) }
func (d *DataContext) Education() []Education   { return snapshot(d, &d.education) }
func (d *DataContext) Courses() []Course        { return snapshot(d, &d.courses) }
func (d *DataContext) Skills() []Skill          { return snapshot(d, &d.skills) }
func (d *DataContext) Interests() []Interest    { return snapshot(d, &d.interests) }

func snapshot[T any](d *DataContext, list *[]T) []T {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]T, len(*list))
	copy(out, *list)
	return out
}

// Login exchanges the admin password for a bearer token. Any failure,
// network or rejection, reports false and leaves the context untouched.
func (d *DataContext) Login(ctx context.Context, password string) bool {
	token, err := d.api.login(ctx, password)
	if err != nil {
		return false
	}
	d.mu.Lock()
	d.token = token
	d.isAdmin = true
	d.mu.Unlock()
	_ = d.tokens.Save(token)
	return true
}

func (d *DataContext) Logout() {
	d.mu.Lock()
	d.token = ""
	d.isAdmin = false
	d.mu.Unlock()
	_ = d.tokens.Clear()
}

// Reset discards session state and the stored credential, then re-runs the
// initial load from scratch. This is the only way out of demo mode.
func (d *DataContext) Reset(ctx context.Context) {
	d.Logout()
	d.mu.Lock()
	d.isDemoMode = false
	d.loaded = false
	d.mu.Unlock()
	d.Load(ctx)
}

// UpdateProfile follows the same dual path as every other mutation: remote
// first, local replay only in demo mode.
func (d *DataContext) UpdateProfile(ctx context.Context, p Profile) error {
	token := d.currentToken()
	env, err := doJSON[Profile](ctx, d.api, http.MethodPut, "/profile", token, p)
	if err != nil {
		d.reactUnauthorized(err)
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.isDemoMode {
			d.profile = p
			return nil
		}
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profile = env.Data
	return nil
}

func (d *DataContext) AddProject(ctx context.Context, p Project) (Project, error) {
	return addResource(ctx, d, "/projects", p, &d.projects)
}
func (d *DataContext) UpdateProject(ctx context.Context, p Project) (Project, error) {
	return updateResource(ctx, d, "/projects", p, &d.projects)
}
func (d *DataContext) DeleteProject(ctx context.Context, id string) error {
	return deleteResource(ctx, d, "/projects", id, &d.projects)
}

func (d *DataContext) AddExperience(ctx context.Context, e Experience) (Experience, error) {
	return addResource(ctx, d, "/experience", e, &d.experience)
}
func (d *DataContext) UpdateExperience(ctx context.Context, e Experience) (Experience, error) {
	return updateResource(ctx, d, "/experience", e, &d.experience)
}
func (d *DataContext) DeleteExperience(ctx context.Context, id string) error {
	return deleteResource(ctx, d, "/experience", id, &d.experience)
}

func (d *DataContext) AddEducation(ctx context.Context, e Education) (Education, error) {
	return addResource(ctx, d, "/education", e, &d.education)
}
func (d *DataContext) UpdateEducation(ctx context.Context, e Education) (Education, error) {
	return updateResource(ctx, d, "/education", e, &d.education)
}
func (d *DataContext) DeleteEducation(ctx context.Context, id string) error {
	return deleteResource(ctx, d, "/education", id, &d.education)
}

func (d *DataContext) AddCourse(ctx context.Context, c Course) (Course, error) {
	return addResource(ctx, d, "/courses", c, &d.courses)
}
func (d *DataContext) UpdateCourse(ctx context.Context, c Course) (Course, error) {
	return updateResource(ctx, d, "/courses", c, &d.courses)
}
func (d *DataContext) DeleteCourse(ctx context.Context, id string) error {
	return deleteResource(ctx, d, "/courses", id, &d.courses)
}

func (d *DataContext) AddSkill(ctx context.Context, s Skill) (Skill, error) {
	return addResource(ctx, d, "/skills", s, &d.skills)
}
func (d *DataContext) UpdateSkill(ctx context.Context, s Skill) (Skill, error) {
	return updateResource(ctx, d, "/skills", s, &d.skills)
}
func (d *DataContext) DeleteSkill(ctx context.Context, id string) error {
	return deleteResource(ctx, d, "/skills", id, &d.skills)
}

func (d *DataContext) AddInterest(ctx context.Context, i Interest) (Interest, error) {
	return addResource(ctx, d, "/interests", i, &d.interests)
}
func (d *DataContext) UpdateInterest(ctx context.Context, i Interest) (Interest, error) {
	return updateResource(ctx, d, "/interests", i, &d.interests)
}
func (d *DataContext) DeleteInterest(ctx context.Context, id string) error {
	return deleteResource(ctx, d, "/interests", id, &d.interests)
}

func (d *DataContext) currentToken() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.token
}

// reactUnauthorized invalidates the session when any authorized call comes
// back 401. Invalidation is reactive, never polled.
func (d *DataContext) reactUnauthorized(err error) {
	if !errors.Is(err, ErrUnauthorized) {
		return
	}
	d.mu.Lock()
	d.token = ""
	d.isAdmin = false
	d.mu.Unlock()
	_ = d.tokens.Clear()
}

type identifiable interface {
	GetID() string
}

// The three appliers below are the single mutation path for every resource
// kind: attempt the remote write, and only when it fails in demo mode
// replay the identical command against local state.

func addResource[T identifiable](ctx context.Context, d *DataContext, path string, item T, local *[]T) (T, error) {
	created, err := createRemote(ctx, d.api, path, d.currentToken(), item)
	if err != nil {
		d.reactUnauthorized(err)
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.isDemoMode {
			*local = append([]T{item}, *local...)
			return item, nil
		}
		var zero T
		return zero, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	*local = append([]T{created}, *local...)
	return created, nil
}

func updateResource[T identifiable](ctx context.Context, d *DataContext, path string, item T, local *[]T) (T, error) {
	updated, err := updateRemote(ctx, d.api, path, item.GetID(), d.currentToken(), item)
	if err != nil {
		d.reactUnauthorized(err)
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.isDemoMode {
			replaceByID(*local, item)
			return item, nil
		}
		var zero T
		return zero, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	replaceByID(*local, updated)
	return updated, nil
}

func deleteResource[T identifiable](ctx context.Context, d *DataContext, path, id string, local *[]T) error {
	err := deleteRemote(ctx, d.api, path, id, d.currentToken())
	if err != nil {
		d.reactUnauthorized(err)
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.isDemoMode {
			*local = removeByID(*local, id)
			return nil
		}
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	*local = removeByID(*local, id)
	return nil
}

func replaceByID[T identifiable](list []T, item T) {
	for i := range list {
		if list[i].GetID() == item.GetID() {
			list[i] = item
			return
		}
	}
}

func removeByID[T identifiable](list []T, id string) []T {
	out := list[:0]
	for _, item := range list {
		if item.GetID() != id {
			out = append(out, item)
		}
	}
	return out
}
