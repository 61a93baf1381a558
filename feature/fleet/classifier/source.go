package classifier

import (
	"fmt"
	"strings"
)

// Kind is the event category that produced a picture-book page.
type Kind int

const (
	Unknown Kind = iota
	Normal
	Swimsuit
	Christmas
	NewYear
	Setsubun
	Valentine
	WhiteDay
	RainySeason
	SummerFestival
	Autumn
	Halloween
	// Original1 marks a bonus artwork page owned by exactly one stage.
	Original1
	// Original2 marks a bonus artwork page with one sub-slot per stage.
	Original2
)

var kindNames = [...]string{
	Unknown:        "unknown",
	Normal:         "normal",
	Swimsuit:       "swimsuit",
	Christmas:      "christmas",
	NewYear:        "new_year",
	Setsubun:       "setsubun",
	Valentine:      "valentine",
	WhiteDay:       "white_day",
	RainySeason:    "rainy_season",
	SummerFestival: "summer_festival",
	Autumn:         "autumn",
	Halloween:      "halloween",
	Original1:      "original1",
	Original2:      "original2",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Seasonal reports whether k is one of the recurring seasonal events.
func (k Kind) Seasonal() bool {
	return k >= Swimsuit && k <= Halloween
}

// PageSource is the classification of one page.
type PageSource struct {
	Kind Kind
	// Stages holds the stage flags of original-illustration pages; false is
	// stage 0 and true the second stage. Original1 uses Stages[0] only.
	Stages [2]bool
}

// Event returns the PageSource of a plain category.
func Event(k Kind) PageSource {
	return PageSource{Kind: k}
}

// OriginalIllustration1 returns a single-stage bonus page owned by the second
// stage when secondStage is set and by stage 0 otherwise.
func OriginalIllustration1(secondStage bool) PageSource {
	return PageSource{Kind: Original1, Stages: [2]bool{secondStage, false}}
}

// OriginalIllustration2 returns a two-slot bonus page whose sub-slots belong to the stages flagged by a and b.
func OriginalIllustration2(a, b bool) PageSource {
	return PageSource{Kind: Original2, Stages: [2]bool{a, b}}
}

// IsOriginalIllustration reports whether the page is bonus artwork.
func (s PageSource) IsOriginalIllustration() bool {
	return s.Kind == Original1 || s.Kind == Original2
}

func (s PageSource) String() string {
	switch s.Kind {
	case Original1:
		return fmt.Sprintf("%s(%t)", s.Kind, s.Stages[0])
	case Original2:
		return fmt.Sprintf("%s(%t,%t)", s.Kind, s.Stages[0], s.Stages[1])
	default:
		return s.Kind.String()
	}
}

// ParseSource parses the String form of a PageSource.
func ParseSource(token string) (PageSource, error) {
	token = strings.TrimSpace(strings.ToLower(token))

	name, args, hasArgs := strings.Cut(token, "(")
	if !hasArgs {
		for k, n := range kindNames {
			if n == token && Kind(k) != Original1 && Kind(k) != Original2 {
				return Event(Kind(k)), nil
			}
		}
		return PageSource{}, fmt.Errorf("unknown page source %q", token)
	}

	args, ok := strings.CutSuffix(args, ")")
	if !ok {
		return PageSource{}, fmt.Errorf("unterminated page source %q", token)
	}
	flags, err := parseFlags(args)
	if err != nil {
		return PageSource{}, fmt.Errorf("page source %q: %w", token, err)
	}

	switch {
	case name == Original1.String() && len(flags) == 1:
		return OriginalIllustration1(flags[0]), nil
	case name == Original2.String() && len(flags) == 2:
		return OriginalIllustration2(flags[0], flags[1]), nil
	}
	return PageSource{}, fmt.Errorf("unknown page source %q", token)
}

func parseFlags(args string) ([]bool, error) {
	var flags []bool
	for _, f := range strings.Split(args, ",") {
		switch strings.TrimSpace(f) {
		case "true", "1":
			flags = append(flags, true)
		case "false", "0":
			flags = append(flags, false)
		default:
			return nil, fmt.Errorf("invalid stage flag %q", f)
		}
	}
	return flags, nil
}
