package view

type CompositeView struct {
	views   []View
	footers []View
}

func NewCompositeView(views []View) *CompositeView {
	return &CompositeView{views: views}
}

func (cv *CompositeView) AddView(view View) {
	cv.views = append(cv.views, view)
}

// AddFooter appends a view that always renders after every regular view.
func (cv *CompositeView) AddFooter(view View) {
	cv.footers = append(cv.footers, view)
}

func (cv *CompositeView) Render(w int) int {
	totalLines := 0
	for _, view := range cv.views {
		totalLines += view.Render(w)
	}
	for _, footer := range cv.footers {
		totalLines += footer.Render(w)
	}
	return totalLines
}
