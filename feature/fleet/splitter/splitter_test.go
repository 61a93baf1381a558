package splitter_test

import (
	"testing"

	"ship-registry/feature/fleet/classifier"
	"ship-registry/feature/fleet/models"
	"ship-registry/feature/fleet/splitter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(priority int, cards []string, status ...string) models.BookPage {
	acquired := 0
	for _, c := range cards {
		if c != "" {
			acquired++
		}
	}
	if status == nil {
		status = []string{}
	}
	return models.BookPage{
		Priority:     priority,
		CardImgList:  cards,
		StatusImg:    status,
		VariationNum: len(cards),
		AcquireNum:   acquired,
	}
}

func entry(bookNo int, name string, pages ...models.BookPage) models.BookEntry {
	e := models.BookEntry{
		BookNo:       bookNo,
		ShipClass:    "吹雪型",
		ShipType:     "駆逐艦",
		ShipModelNum: 2,
		ShipName:     name,
		CardIndexImg: "index.png",
		CardList:     pages,
		Lv:           42,
		IsMarried:    []bool{false, false},
		MarriedImg:   []string{},
	}
	for _, p := range pages {
		e.VariationNum += p.VariationNum
		e.AcquireNum += p.AcquireNum
	}
	return e
}

func TestSplitSingleRow(t *testing.T) {
	c := classifier.New(nil)
	in := entry(1, "長門", page(0, []string{"a", "", "c"}, "s1"))

	first, second := splitter.Split(c, in)
	assert.Nil(t, second)
	assert.Equal(t, in, first)

	// Deep copy.
	first.CardList[0].CardImgList[0] = "changed"
	assert.Equal(t, "a", in.CardList[0].CardImgList[0])
}

func TestSplitNormalPage(t *testing.T) {
	c := classifier.New(nil)
	in := entry(11, "吹雪",
		page(0, []string{"n1", "", "n3", "k1", "k2", ""}, "s0", "s1", "k0", "k1"),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	assert.Equal(t, "吹雪", first.ShipName)
	assert.Equal(t, "吹雪改", second.ShipName)

	assert.Equal(t, []string{"n1", "", "n3"}, first.CardList[0].CardImgList)
	assert.Equal(t, []string{"k1", "k2", ""}, second.CardList[0].CardImgList)
	assert.Equal(t, []string{"s0", "s1"}, first.CardList[0].StatusImg)
	assert.Equal(t, []string{"k0", "k1"}, second.CardList[0].StatusImg)

	assert.Equal(t, 3, first.VariationNum)
	assert.Equal(t, 3, second.VariationNum)
	assert.Equal(t, 2, first.AcquireNum)
	assert.Equal(t, 2, second.AcquireNum)

	for _, e := range []models.BookEntry{first, *second} {
		assert.Equal(t, in.BookNo, e.BookNo)
		assert.Equal(t, in.ShipClass, e.ShipClass)
		assert.Equal(t, in.ShipType, e.ShipType)
		assert.Equal(t, in.Lv, e.Lv)
		assert.Equal(t, in.CardIndexImg, e.CardIndexImg)
	}
}

func TestSplitSharesNothing(t *testing.T) {
	c := classifier.New(classifier.Table{11: {classifier.OriginalIllustration1(false)}})
	in := entry(11, "吹雪",
		page(0, []string{"a", "b", "c", "d", "e", "f"}, "s0", "s1"),
		page(1, []string{"o1", "o2", "o3"}),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	first.CardList[0].CardImgList[0] = "x"
	first.CardList[1].StatusImg[0] = "x"
	assert.Equal(t, "a", in.CardList[0].CardImgList[0])
	assert.Equal(t, "d", second.CardList[0].CardImgList[0])
	assert.Equal(t, []string{"s0", "s1"}, in.CardList[0].StatusImg)
}

func TestSplitOriginalIllustrationSingle(t *testing.T) {
	tests := []struct {
		name        string
		secondStage bool
		owner       int
	}{
		{"FirstStage", false, 0},
		{"SecondStage", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.New(classifier.Table{6: {classifier.OriginalIllustration1(tt.secondStage)}})
			in := entry(6, "赤城",
				page(0, []string{"a", "b", "", "d", "", ""}, "s0", "k0"),
				page(5, []string{"o1", "", "o3"}, "ignored"),
			)

			first, second := splitter.Split(c, in)
			require.NotNil(t, second)
			stages := [2]models.BookEntry{first, *second}

			kept := stages[tt.owner].CardList[1]
			assert.Equal(t, []string{"o1", "", "o3"}, kept.CardImgList)
			assert.Equal(t, 2, kept.AcquireNum)
			assert.Equal(t, 3, kept.VariationNum)
			// Original illustration pages carry the stage-0 normal status image.
			assert.Equal(t, []string{"s0"}, kept.StatusImg)

			cleared := stages[1-tt.owner].CardList[1]
			assert.Equal(t, models.BookPage{Priority: 5, CardImgList: []string{}, StatusImg: []string{}}, cleared)

			assert.Len(t, first.CardList, 2)
			assert.Len(t, second.CardList, 2)
			assert.Equal(t, in.AcquireNum, first.AcquireNum+second.AcquireNum)
			assert.Equal(t, in.VariationNum, first.VariationNum+second.VariationNum)
		})
	}
}

func TestSplitOriginalIllustrationDouble(t *testing.T) {
	c := classifier.New(classifier.Table{10: {classifier.OriginalIllustration2(false, true)}})
	in := entry(10, "島風",
		page(0, []string{"a", "", "", "", "", ""}, "s0", "k0"),
		page(1, []string{"", "o2"}),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	assert.Equal(t, []string{""}, first.CardList[1].CardImgList)
	assert.Equal(t, 0, first.CardList[1].AcquireNum)
	assert.Equal(t, 1, first.CardList[1].VariationNum)
	assert.Equal(t, []string{"s0"}, first.CardList[1].StatusImg)

	assert.Equal(t, []string{"o2"}, second.CardList[1].CardImgList)
	assert.Equal(t, 1, second.CardList[1].AcquireNum)
	assert.Equal(t, 1, second.CardList[1].VariationNum)
	assert.Equal(t, []string{"s0"}, second.CardList[1].StatusImg)

	assert.Equal(t, in.AcquireNum, first.AcquireNum+second.AcquireNum)
	assert.Equal(t, in.VariationNum, first.VariationNum+second.VariationNum)
}

func TestSplitOriginalIllustrationDoubleSameStage(t *testing.T) {
	c := classifier.New(classifier.Table{10: {classifier.OriginalIllustration2(true, true)}})
	in := entry(10, "島風",
		page(0, []string{"", "", "", "", "", ""}),
		page(1, []string{"o1", "o2"}),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	assert.Empty(t, first.CardList[1].CardImgList)
	assert.Empty(t, first.CardList[1].StatusImg)
	assert.Equal(t, []string{"o1", "o2"}, second.CardList[1].CardImgList)
	assert.Equal(t, 2, second.CardList[1].AcquireNum)
}

func TestSplitEventPageHalves(t *testing.T) {
	c := classifier.New(classifier.Table{16: {classifier.Event(classifier.Christmas)}})
	in := entry(16, "綾波",
		page(0, []string{"a", "b", "c", "d", "e", "f"}, "s0", "k0"),
		page(2, []string{"x1", "", "", "", "y2", "y3"}, "xs", "ys"),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	assert.Equal(t, []string{"x1", "", ""}, first.CardList[1].CardImgList)
	assert.Equal(t, []string{"", "y2", "y3"}, second.CardList[1].CardImgList)
	assert.Equal(t, []string{"xs"}, first.CardList[1].StatusImg)
	assert.Equal(t, []string{"ys"}, second.CardList[1].StatusImg)
	assert.Equal(t, 1, first.CardList[1].AcquireNum)
	assert.Equal(t, 2, second.CardList[1].AcquireNum)
	assert.Equal(t, 2, first.CardList[1].Priority)
}

func TestSplitStatusFollowsAcquiredHalf(t *testing.T) {
	c := classifier.New(classifier.Table{16: {classifier.Event(classifier.Autumn), classifier.Event(classifier.Halloween)}})
	in := entry(16, "綾波",
		page(0, []string{"a", "b", "c", "d", "e", "f"}),
		page(1, []string{"", "", "", "y1", "", ""}, "xs", "ys"),
		page(2, []string{"", "", "", "y1", "", ""}, "only"),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	assert.Empty(t, first.CardList[1].StatusImg)
	assert.Equal(t, []string{"ys"}, second.CardList[1].StatusImg)

	assert.Empty(t, first.CardList[2].StatusImg)
	assert.Equal(t, []string{"only"}, second.CardList[2].StatusImg)
}

func TestSplitUnknownPages(t *testing.T) {
	// The table describes one event page but the entry has two: every page past 0 is Unknown.
	c := classifier.New(classifier.Table{11: {classifier.OriginalIllustration1(true)}})
	in := entry(11, "吹雪",
		page(0, []string{"a", "b", "c", "d", "e", "f"}),
		page(1, []string{"p", "q", "r", "s", "t", "u"}),
		page(2, []string{"v", "w", "x"}),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	// Unknown 6-slot pages are halved like any event page.
	assert.Equal(t, []string{"p", "q", "r"}, first.CardList[1].CardImgList)
	assert.Equal(t, []string{"s", "t", "u"}, second.CardList[1].CardImgList)

	// Single-row pages stay with stage 0.
	assert.Equal(t, []string{"v", "w", "x"}, first.CardList[2].CardImgList)
	assert.Empty(t, second.CardList[2].CardImgList)
}

func TestSplitSwimsuitException(t *testing.T) {
	table := classifier.Table{185: {classifier.Event(classifier.Swimsuit)}}
	c := classifier.New(table)

	t.Run("NamedShip", func(t *testing.T) {
		in := entry(185, "Gotland",
			page(0, []string{"a", "b", "c", "d", "e", "f"}),
			page(1, []string{"w1", "w2", ""}, "ws"),
		)

		first, second := splitter.Split(c, in)
		require.NotNil(t, second)
		assert.Empty(t, first.CardList[1].CardImgList)
		assert.Zero(t, first.CardList[1].AcquireNum)
		assert.Equal(t, []string{"w1", "w2", ""}, second.CardList[1].CardImgList)
		assert.Equal(t, []string{"ws"}, second.CardList[1].StatusImg)
	})

	t.Run("OtherShip", func(t *testing.T) {
		in := entry(185, "Richelieu",
			page(0, []string{"a", "b", "c", "d", "e", "f"}),
			page(1, []string{"w1", "w2", ""}, "ws"),
		)

		first, second := splitter.Split(c, in)
		require.NotNil(t, second)
		assert.Equal(t, []string{"w1", "w2", ""}, first.CardList[1].CardImgList)
		assert.Empty(t, second.CardList[1].CardImgList)
	})
}

func TestSplitReconstructsSharedPages(t *testing.T) {
	c := classifier.New(classifier.Table{
		30: {
			classifier.Event(classifier.Swimsuit),
			classifier.OriginalIllustration1(false),
			classifier.Event(classifier.WhiteDay),
		},
	})
	in := entry(30, "睦月",
		page(0, []string{"a", "", "c", "", "e", "f"}, "s0", "k0"),
		page(1, []string{"", "g", "", "h", "", "i"}, "gs", "hs"),
		page(2, []string{"o1", "o2", "o3"}),
		page(3, []string{"j", "k", "l", "", "", ""}),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	sources := c.Pages(in)
	for i, src := range sources {
		if src.IsOriginalIllustration() {
			continue
		}
		joined := append(append([]string{}, first.CardList[i].CardImgList...), second.CardList[i].CardImgList...)
		assert.Equal(t, in.CardList[i].CardImgList, joined, "page %d", i)
	}

	assert.Equal(t, in.VariationNum, first.VariationNum+second.VariationNum)
	assert.Equal(t, in.AcquireNum, first.AcquireNum+second.AcquireNum)
	assert.Equal(t, len(in.CardList), len(first.CardList))
	assert.Equal(t, len(in.CardList), len(second.CardList))
}

// Book 7 lists one event page; the entry carries a trailing original-illustration page.
func TestSplitScenarioTrailingIllustration(t *testing.T) {
	c := classifier.New(classifier.Table{7: {classifier.Event(classifier.Swimsuit)}})

	assert.Equal(t, classifier.Normal, c.Lookup(7, 0).Kind)
	assert.Equal(t, classifier.Swimsuit, c.Lookup(7, 1).Kind)
	assert.Equal(t, classifier.Unknown, c.Lookup(7, 2).Kind)

	in := entry(7, "加賀",
		page(0, []string{"a", "", "", "d", "e", ""}, "s0", "k0"),
		page(1, []string{"w", "", "", "", "", "x"}),
		page(2, []string{"o1", "", "o3"}),
	)

	first, second := splitter.Split(c, in)
	require.NotNil(t, second)

	assert.Equal(t, in.AcquireNum, first.AcquireNum+second.AcquireNum)
	assert.Equal(t, in.VariationNum, first.VariationNum+second.VariationNum)
}

func TestSplitMarriage(t *testing.T) {
	tests := []struct {
		name         string
		flags        []bool
		images       []string
		firstFlags   []bool
		firstImages  []string
		secondFlags  []bool
		secondImages []string
	}{
		{
			name:         "Unmarried",
			flags:        []bool{false, false},
			images:       []string{},
			firstFlags:   []bool{false},
			firstImages:  []string{},
			secondFlags:  []bool{false},
			secondImages: []string{},
		},
		{
			name:         "SecondStageOnly",
			flags:        []bool{false, true},
			images:       []string{"m1", "m2", "m3"},
			firstFlags:   []bool{false},
			firstImages:  []string{},
			secondFlags:  []bool{true},
			secondImages: []string{"m1", "m2", "m3"},
		},
		{
			name:         "Both",
			flags:        []bool{true, true},
			images:       []string{"m1", "m2", "m3", "m4"},
			firstFlags:   []bool{true},
			firstImages:  []string{"m1", "m2"},
			secondFlags:  []bool{true},
			secondImages: []string{"m3", "m4"},
		},
		{
			name:         "UnevenImages",
			flags:        []bool{true, true},
			images:       []string{"m1", "m2", "m3"},
			firstFlags:   []bool{true},
			firstImages:  []string{"m1"},
			secondFlags:  []bool{true},
			secondImages: []string{"m2", "m3"},
		},
		{
			name:         "RemainderToLastMarriedStage",
			flags:        []bool{true, true, true, false},
			images:       []string{"m1", "m2", "m3", "m4", "m5"},
			firstFlags:   []bool{true, true},
			firstImages:  []string{"m1", "m2"},
			secondFlags:  []bool{true, false},
			secondImages: []string{"m3", "m4", "m5"},
		},
		{
			name:         "RemainderStaysWithFirstStage",
			flags:        []bool{true, false},
			images:       []string{"m1", "m2"},
			firstFlags:   []bool{true},
			firstImages:  []string{"m1", "m2"},
			secondFlags:  []bool{false},
			secondImages: []string{},
		},
		{
			name:         "Empty",
			flags:        []bool{},
			images:       nil,
			firstFlags:   []bool{},
			firstImages:  []string{},
			secondFlags:  []bool{},
			secondImages: []string{},
		},
	}

	c := classifier.New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := entry(1, "長門", page(0, []string{"a", "b", "c", "d", "e", "f"}))
			in.IsMarried = tt.flags
			in.MarriedImg = tt.images

			first, second := splitter.Split(c, in)
			require.NotNil(t, second)
			assert.Equal(t, tt.firstFlags, first.IsMarried)
			assert.Equal(t, tt.firstImages, first.MarriedImg)
			assert.Equal(t, tt.secondFlags, second.IsMarried)
			assert.Equal(t, tt.secondImages, second.MarriedImg)
		})
	}
}
