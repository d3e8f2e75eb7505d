package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"github.com/arquinori/portfolio-backend/internal/config"
	"github.com/arquinori/portfolio-backend/internal/db"
	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/repos"
	"github.com/arquinori/portfolio-backend/internal/types"
	"github.com/arquinori/portfolio-backend/internal/utils"
)

type seedImage struct {
	URL     string `yaml:"url"`
	Type    string `yaml:"type"`
	Caption string `yaml:"caption"`
}

type seedProject struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Category    string      `yaml:"category"`
	Location    string      `yaml:"location"`
	Year        string      `yaml:"year"`
	Tags        []string    `yaml:"tags"`
	Images      []seedImage `yaml:"images"`
	Featured    bool        `yaml:"featured"`
	Order       int         `yaml:"order"`
}

type seedExperience struct {
	Role        string `yaml:"role"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
}

type seedEducation struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Year        string `yaml:"year"`
	Order       int    `yaml:"order"`
}

type seedCourse struct {
	Name        string `yaml:"name"`
	Institution string `yaml:"institution"`
	Year        string `yaml:"year"`
	Order       int    `yaml:"order"`
}

type seedSkill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Order int    `yaml:"order"`
}

type seedInterest struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Order int    `yaml:"order"`
}

type seedProfile struct {
	Name               string `yaml:"name"`
	Title              string `yaml:"title"`
	LogoName           string `yaml:"logoName"`
	HeroSubtitle       string `yaml:"heroSubtitle"`
	HeroTitlePrimary   string `yaml:"heroTitlePrimary"`
	HeroTitleSecondary string `yaml:"heroTitleSecondary"`
	About              string `yaml:"about"`
	Phone              string `yaml:"phone"`
	Email              string `yaml:"email"`
	Address            string `yaml:"address"`
	Socials            struct {
		LinkedIn  string `yaml:"linkedin"`
		Instagram string `yaml:"instagram"`
		Behance   string `yaml:"behance"`
	} `yaml:"socials"`
}

type seedFile struct {
	Profile    *seedProfile     `yaml:"profile"`
	Projects   []seedProject    `yaml:"projects"`
	Experience []seedExperience `yaml:"experience"`
	Education  []seedEducation  `yaml:"education"`
	Courses    []seedCourse     `yaml:"courses"`
	Skills     []seedSkill      `yaml:"skills"`
	Interests  []seedInterest   `yaml:"interests"`
}

func main() {
	seedPath := flag.String("file", "seed/seed.yaml", "path to the seed fixture")
	flag.Parse()

	log, err := logger.New(utils.GetEnv("LOG_MODE", "development", nil))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	raw, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatal("Failed to read seed file", "path", *seedPath, "error", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatal("Failed to parse seed file", "error", err)
	}

	postgresService, err := db.NewPostgresService(cfg, log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()
	ctx := context.Background()

	if seed.Profile != nil {
		profileRepo := repos.NewProfileRepo(thePG, log)
		profile, err := profileRepo.GetOrCreate(ctx, nil)
		if err != nil {
			log.Fatal("Failed to materialize profile", "error", err)
		}
		if profile.Name == "" {
			sp := seed.Profile
			profile.Name = sp.Name
			profile.Title = sp.Title
			profile.LogoName = sp.LogoName
			profile.HeroSubtitle = sp.HeroSubtitle
			profile.HeroTitlePrimary = sp.HeroTitlePrimary
			profile.HeroTitleSecondary = sp.HeroTitleSecondary
			profile.About = sp.About
			profile.Phone = sp.Phone
			profile.Email = sp.Email
			profile.Address = sp.Address
			profile.Socials = datatypes.NewJSONType(types.Socials{
				LinkedIn:  sp.Socials.LinkedIn,
				Instagram: sp.Socials.Instagram,
				Behance:   sp.Socials.Behance,
			})
			if _, err := profileRepo.Save(ctx, nil, profile); err != nil {
				log.Fatal("Failed to seed profile", "error", err)
			}
			log.Info("Seeded profile", "name", profile.Name)
		} else {
			log.Info("Profile already populated, skipping")
		}
	}

	seedCollection(ctx, log, "projects", repos.NewResourceRepo[types.Project](thePG, log, "ProjectRepo"), mapProjects(seed.Projects))
	seedCollection(ctx, log, "experience", repos.NewResourceRepo[types.Experience](thePG, log, "ExperienceRepo"), mapExperience(seed.Experience))
	seedCollection(ctx, log, "education", repos.NewResourceRepo[types.Education](thePG, log, "EducationRepo"), mapEducation(seed.Education))
	seedCollection(ctx, log, "courses", repos.NewResourceRepo[types.Course](thePG, log, "CourseRepo"), mapCourses(seed.Courses))
	seedCollection(ctx, log, "skills", repos.NewResourceRepo[types.Skill](thePG, log, "SkillRepo"), mapSkills(seed.Skills))
	seedCollection(ctx, log, "interests", repos.NewResourceRepo[types.Interest](thePG, log, "InterestRepo"), mapInterests(seed.Interests))
}

// seedCollection inserts the fixture records only when the collection is
// still empty, so re-running the command never duplicates content.
func seedCollection[T any](ctx context.Context, log *logger.Logger, name string, repo repos.ResourceRepo[T], records []*T) {
	if len(records) == 0 {
		return
	}
	existing, err := repo.List(ctx, nil)
	if err != nil {
		log.Fatal("Failed to inspect collection", "collection", name, "error", err)
	}
	if len(existing) > 0 {
		log.Info("Collection already populated, skipping", "collection", name, "count", len(existing))
		return
	}
	for _, record := range records {
		if _, err := repo.Create(ctx, nil, record); err != nil {
			log.Fatal("Failed to seed record", "collection", name, "error", err)
		}
	}
	log.Info("Seeded collection", "collection", name, "count", len(records))
}

func mapProjects(in []seedProject) []*types.Project {
	out := make([]*types.Project, 0, len(in))
	for _, p := range in {
		images := make([]types.ProjectImage, 0, len(p.Images))
		for _, img := range p.Images {
			imageType := img.Type
			if imageType == "" {
				imageType = types.ImageTypeRender
			}
			images = append(images, types.ProjectImage{URL: img.URL, Type: imageType, Caption: img.Caption})
		}
		record := &types.Project{
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			Location:    p.Location,
			Year:        p.Year,
			Tags:        datatypes.NewJSONSlice(p.Tags),
			Images:      datatypes.NewJSONSlice(images),
			Featured:    p.Featured,
		}
		record.Order = p.Order
		out = append(out, record)
	}
	return out
}

func mapExperience(in []seedExperience) []*types.Experience {
	out := make([]*types.Experience, 0, len(in))
	for _, e := range in {
		record := &types.Experience{Role: e.Role, Company: e.Company, Period: e.Period, Description: e.Description}
		record.Order = e.Order
		out = append(out, record)
	}
	return out
}

func mapEducation(in []seedEducation) []*types.Education {
	out := make([]*types.Education, 0, len(in))
	for _, e := range in {
		record := &types.Education{Degree: e.Degree, Institution: e.Institution, Year: e.Year}
		record.Order = e.Order
		out = append(out, record)
	}
	return out
}

func mapCourses(in []seedCourse) []*types.Course {
	out := make([]*types.Course, 0, len(in))
	for _, c := range in {
		record := &types.Course{Name: c.Name, Institution: c.Institution, Year: c.Year}
		record.Order = c.Order
		out = append(out, record)
	}
	return out
}

func mapSkills(in []seedSkill) []*types.Skill {
	out := make([]*types.Skill, 0, len(in))
	for _, s := range in {
		level := s.Level
		record := &types.Skill{Name: s.Name, Level: &level}
		record.Order = s.Order
		out = append(out, record)
	}
	return out
}

func mapInterests(in []seedInterest) []*types.Interest {
	out := make([]*types.Interest, 0, len(in))
	for _, i := range in {
		record := &types.Interest{Name: i.Name, Icon: i.Icon}
		record.Order = i.Order
		out = append(out, record)
	}
	return out
}
