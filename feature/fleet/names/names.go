package names

import (
	"errors"
	"fmt"
	"strings"
)

// Marker is the glyph that starts every upgrade-stage suffix.
const Marker = "改"

// ErrUnrecognizedStageSuffix is matched by every *UnrecognizedStageSuffixError.
var ErrUnrecognizedStageSuffix = errors.New("unrecognized stage suffix")

// UnrecognizedStageSuffixError reports a display name whose suffix maps to no known stage.
type UnrecognizedStageSuffixError struct {
	Name   string
	Suffix string
}

// Error implements the error interface
func (e *UnrecognizedStageSuffixError) Error() string {
	return fmt.Sprintf("unrecognized stage suffix %q in %q", e.Suffix, e.Name)
}

// Is implements errors.Is support
func (e *UnrecognizedStageSuffixError) Is(target error) bool {
	return target == ErrUnrecognizedStageSuffix
}

// rename lists ships whose later stages carry a different name instead of a suffix.
// Offset is the stage the renamed prefix starts at.
type rename struct {
	Base   string
	Offset int
}

var renames = map[string]rename{
	"Верный": {Base: "響", Offset: 2},
	"龍鳳":     {Base: "大鯨", Offset: 1},
	"呂500":   {Base: "U-511", Offset: 2},
	"大鷹":     {Base: "春日丸", Offset: 1},
	"Italia": {Base: "Littorio", Offset: 1},
	"千歳甲":    {Base: "千歳", Offset: 2},
	"千代田甲":   {Base: "千代田", Offset: 2},
	"千歳航":    {Base: "千歳", Offset: 3},
	"千代田航":   {Base: "千代田", Offset: 3},
	"Октябрьская революция": {Base: "Гангут", Offset: 1},
	"Гангут два":            {Base: "Гангут", Offset: 2},
	"Zara due":              {Base: "Zara", Offset: 2},
}

var suffixStages = map[string]int{
	"":            0,
	Marker:        1,
	Marker + "二":  2,
	Marker + "二甲": 3,
	Marker + "二乙": 3,
	Marker + "二丁": 3,
	Marker + "二特": 3,
	Marker + "三":  3,
}

// split cuts displayName at the first marker.
func split(displayName string) (prefix, suffix string) {
	if i := strings.Index(displayName, Marker); i >= 0 {
		return displayName[:i], displayName[i:]
	}
	return displayName, ""
}

// BaseName returns the base identity of displayName: the name with its stage
// suffix stripped, mapped through the rename table.
func BaseName(displayName string) string {
	prefix, _ := split(displayName)
	if r, ok := renames[prefix]; ok {
		return r.Base
	}
	return prefix
}

// Stage returns the upgrade stage displayName denotes.
func Stage(displayName string) (int, error) {
	prefix, suffix := split(displayName)
	stage, ok := suffixStages[suffix]
	if !ok {
		return 0, &UnrecognizedStageSuffixError{Name: displayName, Suffix: suffix}
	}
	if r, ok := renames[prefix]; ok {
		stage += r.Offset
	}
	return stage, nil
}
