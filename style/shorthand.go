package style

import (
	"fmt"
	"strings"
)

// fourDirs is the CSS box direction order (top, right, bottom, left); missing
// values mirror across the box the way CSS margin/padding/border shorthands do.
var fourDirs = [4]string{"margin-top", "margin-right", "margin-bottom", "margin-left"}

// MarginShorthandManager implements ShorthandManager for `margin`, expanding
// it into the four margin-* longhands per CSS2.1 §8.3's 1/2/3/4-value rule.
type MarginShorthandManager struct{}

func (MarginShorthandManager) PropertyName() string { return "margin" }

func (MarginShorthandManager) SetValues(lex LexicalUnit, important bool, emit LonghandEmit) error {
	fields := strings.Fields(lex.Text)
	n := len(fields)
	if n == 0 || n > 4 {
		return fmt.Errorf("style: margin shorthand expects 1-4 values, got %d", n)
	}
	var byDir [4]string
	switch n {
	case 1:
		byDir = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		byDir = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		byDir = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		byDir = [4]string{fields[0], fields[1], fields[2], fields[3]}
	}
	for i, dir := range fourDirs {
		emit(dir, LexicalUnit{Text: byDir[i], Important: lex.Important}, important)
	}
	return nil
}
