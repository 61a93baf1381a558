package models

// RosterEntry represents one ship of the character roster (the player's owned ships).
type RosterEntry struct {
	BookNo             int      `json:"bookNo"`
	Lv                 int      `json:"lv"`
	ShipType           string   `json:"shipType"`
	ShipSortNo         int      `json:"shipSortNo"`
	RemodelLv          int      `json:"remodelLv"`
	ShipName           string   `json:"shipName"`
	StatusImg          string   `json:"statusImg"`
	StarNum            int      `json:"starNum"`
	ShipClass          string   `json:"shipClass"`
	ShipClassIndex     int      `json:"shipClassIndex"`
	Married            bool     `json:"isMarried"`
	DisassemblyProtect bool     `json:"disassemblyProtect"`
	SlotEquipName      []string `json:"slotEquipName"`
	SlotAmount         []int    `json:"slotAmount"`
	SlotDisp           []string `json:"slotDisp"`
	SlotImg            []string `json:"slotImg"`
}

// Equipment summarises one equipped slot.
type Equipment struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// Equipment returns the equipped slots, skipping empty ones.
func (r RosterEntry) Equipment() []Equipment {
	var out []Equipment
	for i, name := range r.SlotEquipName {
		if name == "" {
			continue
		}
		eq := Equipment{Name: name}
		if i < len(r.SlotAmount) {
			eq.Amount = r.SlotAmount[i]
		}
		out = append(out, eq)
	}
	return out
}
