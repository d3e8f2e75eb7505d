package client

// GalleryTab selects which slice of a project's images the viewer cycles
// through.
type GalleryTab string

const (
	TabAll    GalleryTab = "all"
	TabRender GalleryTab = "render"
	TabPlan   GalleryTab = "plan"
	TabDetail GalleryTab = "detail"
)

// Tabs is the fixed display order of the gallery filters.
var Tabs = []GalleryTab{TabAll, TabRender, TabPlan, TabDetail}

// Gallery is the viewer state for a single project's image set: an active
// tab plus a cursor into the filtered view. Images without a URL are
// dropped up front and never rendered.
type Gallery struct {
	images []ProjectImage
	tab    GalleryTab
	index  int
}

func NewGallery(images []ProjectImage) *Gallery {
	kept := make([]ProjectImage, 0, len(images))
	for _, img := range images {
		if img.URL != "" {
			kept = append(kept, img)
		}
	}
	return &Gallery{images: kept, tab: TabAll}
}

func (g *Gallery) Tab() GalleryTab { return g.tab }
func (g *Gallery) Index() int      { return g.index }

func (g *Gallery) filtered(tab GalleryTab) []ProjectImage {
	if tab == TabAll {
		return g.images
	}
	var out []ProjectImage
	for _, img := range g.images {
		if GalleryTab(img.Type) == tab {
			out = append(out, img)
		}
	}
	return out
}

// Count reports how many images the given tab would show.
func (g *Gallery) Count(tab GalleryTab) int {
	return len(g.filtered(tab))
}

// Enabled reports whether a tab has anything to show. Disabled tabs stay
// visible but cannot be selected.
func (g *Gallery) Enabled(tab GalleryTab) bool {
	return g.Count(tab) > 0
}

// SelectTab switches the filter and rewinds the cursor to the first image.
// Selecting a disabled tab is a no-op.
func (g *Gallery) SelectTab(tab GalleryTab) {
	if !g.Enabled(tab) {
		return
	}
	g.tab = tab
	g.index = 0
}

// Current returns the image under the cursor, or false when the active
// view is empty.
func (g *Gallery) Current() (ProjectImage, bool) {
	view := g.filtered(g.tab)
	if len(view) == 0 {
		return ProjectImage{}, false
	}
	return view[g.index], true
}

// Next advances the cursor, wrapping past the end back to the start.
func (g *Gallery) Next() {
	n := len(g.filtered(g.tab))
	if n == 0 {
		return
	}
	g.index = (g.index + 1) % n
}

// Prev steps the cursor back, wrapping from the start to the end.
func (g *Gallery) Prev() {
	n := len(g.filtered(g.tab))
	if n == 0 {
		return
	}
	g.index = (g.index - 1 + n) % n
}
