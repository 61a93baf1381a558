package models

// Blueprint tracks the remodel blueprints held for one base ship.
type Blueprint struct {
	ShipName          string                `json:"shipName"`
	ShipType          string                `json:"shipType"`
	BlueprintTotalNum int                   `json:"blueprintTotalNum"`
	Expirations       []BlueprintExpiration `json:"expirationDateList"`
}

// BlueprintExpiration is one batch of blueprints sharing an expiry month.
type BlueprintExpiration struct {
	// ExpirationDate is the expiry month, formatted "2006-01".
	ExpirationDate  string `json:"expirationDate"`
	BlueprintNum    int    `json:"blueprintNum"`
	ExpireThisMonth bool   `json:"expireThisMonth"`
}

// ExpiringThisMonth sums the blueprints flagged to expire this month.
func (b Blueprint) ExpiringThisMonth() int {
	n := 0
	for _, exp := range b.Expirations {
		if exp.ExpireThisMonth {
			n += exp.BlueprintNum
		}
	}
	return n
}
