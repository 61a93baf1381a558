package splitter

import (
	"ship-registry/feature/fleet/classifier"
	"ship-registry/feature/fleet/models"
	"ship-registry/feature/fleet/names"
)

const (
	singleSlots = 3
	dualSlots   = 6
)

// swimsuitSecondStage names the dual-row ship whose swimsuit page belongs to
// the second stage only.
const swimsuitSecondStage = "Gotland"

// Split normalizes one picture-book entry into one record per stage.
// Entries whose page 0 is not a dual row are returned as a deep copy with a
// nil second record.
func Split(c *classifier.Classifier, entry models.BookEntry) (models.BookEntry, *models.BookEntry) {
	if entry.Slots() != dualSlots {
		return entry.Clone(), nil
	}

	s := splitter{
		sources: c.Pages(entry),
		entry:   entry,
	}
	first, second := s.split()
	return first, &second
}

type splitter struct {
	entry   models.BookEntry
	sources []classifier.PageSource
	// normalStatus is the stage-0 half of page 0's status images.
	normalStatus []string
}

func (s *splitter) split() (models.BookEntry, models.BookEntry) {
	stages := [2]models.BookEntry{
		s.header(s.entry.ShipName),
		s.header(s.entry.ShipName + names.Marker),
	}

	for i, page := range s.entry.CardList {
		pages := s.page(i, page)
		for side := range stages {
			stages[side].CardList = append(stages[side].CardList, pages[side])
		}
	}

	married := splitMarriage(s.entry.IsMarried, s.entry.MarriedImg)
	for side := range stages {
		stages[side].IsMarried = married[side].flags
		stages[side].MarriedImg = married[side].images
		stages[side].VariationNum, stages[side].AcquireNum = totals(stages[side].CardList)
	}
	return stages[0], stages[1]
}

// header copies the scalar metadata shared by both stages.
func (s *splitter) header(name string) models.BookEntry {
	return models.BookEntry{
		BookNo:         s.entry.BookNo,
		ShipClass:      s.entry.ShipClass,
		ShipClassIndex: s.entry.ShipClassIndex,
		ShipType:       s.entry.ShipType,
		ShipModelNum:   s.entry.ShipModelNum,
		ShipName:       name,
		CardIndexImg:   s.entry.CardIndexImg,
		Lv:             s.entry.Lv,
		CardList:       make([]models.BookPage, 0, len(s.entry.CardList)),
	}
}

// page attributes page i to the two stages.
func (s *splitter) page(i int, page models.BookPage) [2]models.BookPage {
	src := s.sources[i]

	switch {
	case i == 0:
		pages := halve(page)
		first, second := splitList(page.StatusImg)
		s.normalStatus = first
		pages[0].StatusImg = cloneList(first)
		pages[1].StatusImg = second
		return pages

	case src.Kind == classifier.Original1:
		owner := 0
		if src.Stages[0] {
			owner = 1
		}
		return s.assign(owner, s.illustration(page))

	case src.Kind == classifier.Original2:
		return s.splitIllustration(page, src.Stages)

	case src.Kind == classifier.Swimsuit && s.entry.ShipName == swimsuitSecondStage:
		return s.assign(1, page.Clone())

	case len(page.CardImgList) == dualSlots:
		pages := halve(page)
		splitStatus(page.StatusImg, &pages)
		return pages
	}

	return s.assign(0, page.Clone())
}

// assign gives page to the owner stage and an emptied copy to the other one.
func (s *splitter) assign(owner int, page models.BookPage) [2]models.BookPage {
	var pages [2]models.BookPage
	pages[owner] = page
	pages[1-owner] = zeroed(page)
	return pages
}

// illustration clones an original-illustration page, carrying the normal status images.
func (s *splitter) illustration(page models.BookPage) models.BookPage {
	out := page.Clone()
	out.StatusImg = cloneList(s.normalStatus)
	return out
}

// splitIllustration keeps on each stage the sub-slots flagged for it.
// Slots past the flags follow the last flag.
func (s *splitter) splitIllustration(page models.BookPage, flags [2]bool) [2]models.BookPage {
	var retained [2][]string
	for j, img := range page.CardImgList {
		flag := flags[min(j, len(flags)-1)]
		side := 0
		if flag {
			side = 1
		}
		retained[side] = append(retained[side], img)
	}

	var pages [2]models.BookPage
	for side := range pages {
		cards := retained[side]
		if cards == nil {
			cards = []string{}
		}
		out := models.BookPage{
			Priority:     page.Priority,
			CardImgList:  cards,
			StatusImg:    []string{},
			VariationNum: len(cards),
		}
		out.AcquireNum = out.Acquired()
		if len(cards) > 0 {
			out.StatusImg = cloneList(s.normalStatus)
		}
		pages[side] = out
	}
	return pages
}

// halve gives slots 0-2 to stage 0 and slots 3-5 to the second stage.
func halve(page models.BookPage) [2]models.BookPage {
	mid := len(page.CardImgList) / 2
	halves := [2][]string{
		cloneList(page.CardImgList[:mid]),
		cloneList(page.CardImgList[mid:]),
	}

	var pages [2]models.BookPage
	for side, cards := range halves {
		pages[side] = models.BookPage{
			Priority:     page.Priority,
			CardImgList:  cards,
			StatusImg:    []string{},
			VariationNum: len(cards),
		}
		pages[side].AcquireNum = pages[side].Acquired()
	}
	return pages
}

// splitStatus distributes the status images of a halved page. A list of two
// or more is cut in half and a stage without acquired cards drops its half; a
// single image goes to the stage holding cards, stage 0 first.
func splitStatus(status []string, pages *[2]models.BookPage) {
	switch len(status) {
	case 0:
		return
	case 1:
		for side := range pages {
			if pages[side].AcquireNum > 0 {
				pages[side].StatusImg = cloneList(status)
				return
			}
		}
		return
	}

	first, second := splitList(status)
	for side, half := range [2][]string{first, second} {
		if pages[side].AcquireNum > 0 {
			pages[side].StatusImg = half
		}
	}
}

// zeroed returns an empty page keeping the index position of page.
func zeroed(page models.BookPage) models.BookPage {
	return models.BookPage{
		Priority:    page.Priority,
		CardImgList: []string{},
		StatusImg:   []string{},
	}
}

// splitList copies the two halves of list; the first half takes the odd element.
func splitList(list []string) ([]string, []string) {
	mid := (len(list) + 1) / 2
	return cloneList(list[:mid]), cloneList(list[mid:])
}

func cloneList(list []string) []string {
	return append([]string{}, list...)
}

func totals(pages []models.BookPage) (variation, acquired int) {
	for _, p := range pages {
		variation += p.VariationNum
		acquired += p.AcquireNum
	}
	return variation, acquired
}
