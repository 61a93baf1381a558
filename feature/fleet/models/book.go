package models

// BookPage is one page of a picture-book entry.
// Page 0 holds the baseline cards; later pages hold event or bonus artwork.
type BookPage struct {
	Priority int `json:"priority"`
	// CardImgList has one slot per card variation; an empty string is a card not owned yet.
	CardImgList  []string `json:"cardImgList"`
	StatusImg    []string `json:"statusImg"`
	VariationNum int      `json:"variationNum"`
	AcquireNum   int      `json:"acquireNum"`
}

// Clone returns a deep copy of the page.
func (p BookPage) Clone() BookPage {
	p.CardImgList = cloneStrings(p.CardImgList)
	p.StatusImg = cloneStrings(p.StatusImg)
	return p
}

// Acquired counts the owned (non-empty) card slots.
func (p BookPage) Acquired() int {
	n := 0
	for _, img := range p.CardImgList {
		if img != "" {
			n++
		}
	}
	return n
}

// BookEntry represents one record of the picture book ("zukan") export.
type BookEntry struct {
	BookNo         int        `json:"bookNo"`
	ShipClass      string     `json:"shipClass"`
	ShipClassIndex int        `json:"shipClassIndex"`
	ShipType       string     `json:"shipType"`
	ShipModelNum   int        `json:"shipModelNum"`
	ShipName       string     `json:"shipName"`
	CardIndexImg   string     `json:"cardIndexImg"`
	CardList       []BookPage `json:"cardList"`
	VariationNum   int        `json:"variationNum"`
	AcquireNum     int        `json:"acquireNum"`
	Lv             int        `json:"lv"`
	IsMarried      []bool     `json:"isMarried"`
	MarriedImg     []string   `json:"marriedImg"`
}

// Clone returns a deep copy of the entry.
func (e BookEntry) Clone() BookEntry {
	if e.CardList != nil {
		pages := make([]BookPage, len(e.CardList))
		for i, p := range e.CardList {
			pages[i] = p.Clone()
		}
		e.CardList = pages
	}
	if e.IsMarried != nil {
		e.IsMarried = append([]bool{}, e.IsMarried...)
	}
	e.MarriedImg = cloneStrings(e.MarriedImg)
	return e
}

// Slots returns the number of card slots on page 0 (3 for a single stage, 6 for a dual-row record).
func (e BookEntry) Slots() int {
	if len(e.CardList) == 0 {
		return 0
	}
	return len(e.CardList[0].CardImgList)
}

// Owned reports whether at least one card of the entry has been acquired.
func (e BookEntry) Owned() bool {
	return e.AcquireNum > 0
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
