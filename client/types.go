// Package client is the data-sync layer consumed by every portfolio view:
// it loads all content from the API in one parallel fan-out, falls back to
// bundled defaults when the backend is unreachable ("demo mode"), and
// applies admin mutations remotely with a local in-memory replay when the
// remote path fails in demo mode.
package client

type Socials struct {
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Behance   string `json:"behance"`
}

type Profile struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Title              string  `json:"title"`
	LogoName           string  `json:"logoName"`
	HeroSubtitle       string  `json:"heroSubtitle"`
	HeroTitlePrimary   string  `json:"heroTitlePrimary"`
	HeroTitleSecondary string  `json:"heroTitleSecondary"`
	About              string  `json:"about"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Address            string  `json:"address"`
	PortraitURL        string  `json:"portraitUrl"`
	FormalURL          string  `json:"formalUrl"`
	CVURL              string  `json:"cvUrl"`
	Socials            Socials `json:"socials"`
}

type ProjectImage struct {
	URL     string `json:"url"`
	Type    string `json:"type"`
	Caption string `json:"caption"`
}

type Project struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Year        string         `json:"year"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Images      []ProjectImage `json:"images"`
	Featured    bool           `json:"featured"`
	Order       int            `json:"order"`
}

type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Order       int    `json:"order"`
}

type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Order       int    `json:"order"`
}

type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Order int    `json:"order"`
}

type Interest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

func (p Project) GetID() string    { return p.ID }
func (e Experience) GetID() string { return e.ID }
func (e Education) GetID() string  { return e.ID }
func (c Course) GetID() string     { return c.ID }
func (s Skill) GetID() string      { return s.ID }
func (i Interest) GetID() string   { return i.ID }
