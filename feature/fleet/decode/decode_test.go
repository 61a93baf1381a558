package decode_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"ship-registry/feature/fleet/decode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"吹雪改二", "吹雪改二"},
		{" 吹雪 ", "吹雪"},
		{"Ｕ－５１１", "U-511"},
		{"呂５００", "呂500"},
		{"Верный", "Верный"},
		{"ｶﾀｶﾅ", "カタカナ"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, decode.Name(tt.input))
		})
	}
}

func TestBook(t *testing.T) {
	input := `[
	  {
	    "bookNo": 11,
	    "shipName": "吹雪",
	    "shipType": "駆逐艦",
	    "cardList": [
	      {"priority": 0, "cardImgList": ["a.png", "", "", "b.png", "", ""], "statusImg": ["s.png"], "variationNum": 6, "acquireNum": 2}
	    ],
	    "variationNum": 6,
	    "acquireNum": 2,
	    "lv": 12,
	    "isMarried": [false, false],
	    "marriedImg": []
	  }
	]`

	entries, err := decode.Book(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, 11, e.BookNo)
	assert.Equal(t, "吹雪", e.ShipName)
	assert.Equal(t, 6, e.Slots())
	assert.Equal(t, []string{"s.png"}, e.CardList[0].StatusImg)
	assert.Equal(t, 12, e.Lv)
}

func TestBookInvalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"EmptyName", `[{"shipName": "", "cardList": [{"cardImgList": ["", "", ""]}]}]`, "empty ship name"},
		{"NoPages", `[{"shipName": "吹雪", "cardList": []}]`, "has no pages"},
		{"BadSlots", `[{"shipName": "吹雪", "cardList": [{"cardImgList": ["", "", "", ""]}]}]`, "4 card slots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode.Book(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, decode.ErrInvalidRecord))

			var recErr *decode.RecordError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, decode.SourceBook, recErr.Source)
			assert.Equal(t, 0, recErr.Index)
			assert.Contains(t, recErr.Reason, tt.reason)
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		_, err := decode.Book(strings.NewReader(`{"not": "an array"}`))
		require.Error(t, err)
		assert.False(t, errors.Is(err, decode.ErrInvalidRecord))
		assert.Contains(t, err.Error(), "failed to decode picturebook")
	})
}

func TestRoster(t *testing.T) {
	input := `[
	  {"shipName": "Ｕ－５１１改", "lv": 99, "starNum": 5, "isMarried": true, "slotEquipName": ["魚雷", ""], "slotAmount": [0, 0]},
	  {"shipName": "吹雪", "lv": 1}
	]`

	entries, err := decode.Roster(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "U-511改", entries[0].ShipName)
	assert.True(t, entries[0].Married)
	assert.Equal(t, 5, entries[0].StarNum)
	assert.Len(t, entries[0].Equipment(), 1)

	_, err = decode.Roster(strings.NewReader(`[{"shipName": "吹雪"}, {"shipName": " "}]`))
	var recErr *decode.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 1, recErr.Index)
}

func TestBlueprints(t *testing.T) {
	input := `[{"shipName": "吹雪", "shipType": "駆逐艦", "blueprintTotalNum": 3,
	  "expirationDateList": [{"expirationDate": "2026-10", "blueprintNum": 3, "expireThisMonth": true}]}]`

	entries, err := decode.Blueprints(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].ExpiringThisMonth())

	_, err = decode.Blueprints(strings.NewReader(`[{"shipName": ""}]`))
	assert.True(t, errors.Is(err, decode.ErrInvalidRecord))
}

func TestWiki(t *testing.T) {
	input := `[
	  {"name": "吹雪改", "type": "駆逐艦", "hp": "16", "armor": 7, "firepower": 10.0, "luck": "12", "speed": "高速", "range": "短"},
	  {"name": "睦月改", "type": "駆逐艦", "hp": 13, "remarks": "限定"}
	]`

	entries, err := decode.Wiki(strings.NewReader(input), true)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	e := entries[0]
	assert.Equal(t, "吹雪改", e.Name)
	assert.True(t, e.Modified)
	assert.Equal(t, 16, e.Stats.HP)
	assert.Equal(t, 7, e.Stats.Armor)
	assert.Equal(t, 10, e.Stats.Firepower)
	assert.Equal(t, 12, e.Stats.Luck)
	assert.Equal(t, "高速", e.Stats.Speed)
	assert.Empty(t, e.Remarks)
	assert.Equal(t, "限定", entries[1].Remarks)

	_, err = decode.Wiki(strings.NewReader(`[{"type": "駆逐艦"}]`), false)
	var recErr *decode.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, decode.SourceWikiUnmodified, recErr.Source)
}

func TestMarriage(t *testing.T) {
	input := "id,name,date\n1,吹雪改二,2024/03/01\n2, Ｕ－５１１ ,2024-04-02\n"

	entries, err := decode.Marriage(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, "吹雪改二", entries[0].Name)
	assert.Equal(t, 2024, entries[0].RegisteredAt.Year())
	assert.Equal(t, time.March, entries[0].RegisteredAt.Month())
	assert.Equal(t, "U-511", entries[1].Name)
	assert.Equal(t, 2, entries[1].RegisteredAt.Day())
}

func TestMarriageColumnOrder(t *testing.T) {
	input := "\ufeffDate,Name,ID\n2024/03/01 12:30,吹雪,7\n"

	entries, err := decode.Marriage(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].ID)
	assert.Equal(t, 12, entries[0].RegisteredAt.Hour())
}

func TestMarriageInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"BadID", "id,name,date\nx,吹雪,2024/03/01\n"},
		{"EmptyName", "id,name,date\n1,,2024/03/01\n"},
		{"BadDate", "id,name,date\n1,吹雪,yesterday\n"},
		{"ShortRow", "id,name,date\n1,吹雪\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode.Marriage(strings.NewReader(tt.input))
			assert.True(t, errors.Is(err, decode.ErrInvalidRecord))
		})
	}

	t.Run("MissingColumn", func(t *testing.T) {
		_, err := decode.Marriage(strings.NewReader("id,name\n1,吹雪\n"))
		assert.ErrorContains(t, err, `lacks column "date"`)
	})

	t.Run("Empty", func(t *testing.T) {
		entries, err := decode.Marriage(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
