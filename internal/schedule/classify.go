package schedule

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/lshigami/examsched/internal/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrUnknownClassTime = errors.New("class time does not name a known weekday pattern")

// Checked in order. "segunda a quinta" must come after the two-day patterns
// so that "Segunda e Quarta" is never read as a four-day class.
var slotPrefixes = []struct {
	needle  string
	pattern model.ClassTimePattern
}{
	{"sabado", model.PatternSaturday},
	{"segunda e quarta", model.PatternMonWed},
	{"terca e quinta", model.PatternTueThu},
	{"segunda a quinta", model.PatternMonToThu},
}

// Classify maps a free-text class slot such as
// "Terça e Quinta - Tarde - 14:00 - 15:00" to its weekday pattern.
// Matching ignores case and accents.
func Classify(classTime string) (model.ClassTimePattern, error) {
	folded, err := fold(classTime)
	if err != nil {
		return "", fmt.Errorf("normalizing class time %q: %w", classTime, err)
	}
	for _, p := range slotPrefixes {
		if strings.Contains(folded, p.needle) {
			return p.pattern, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClassTime, classTime)
}

func fold(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " "), nil
}
