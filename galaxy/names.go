// SPDX-License-Identifier: MIT
// Package: starlane/galaxy
//
// names.go — deterministic star system naming.
//
// Contract (strict):
//   • Exactly TWO generator draws per name (prefix, suffix), collision or
//     not, so the attribute stream never shifts when tables change size.
//   • Collisions are resolved by numbering repeats with roman numerals;
//     the resulting names are unique within one galaxy.

package galaxy

import (
	"fmt"
	"strings"

	"github.com/eykd/starlane/prng"
)

// namePrefixes are the core star names. Drawn uniformly.
var namePrefixes = [...]string{
	"Altair", "Antares", "Arcturus", "Aurora", "Capella", "Castor",
	"Cinder", "Cygnus", "Deneb", "Draco", "Halcyon", "Kepler",
	"Lyra", "Meridian", "Mira", "Orion", "Pollux", "Procyon",
	"Rigel", "Sirius", "Thule", "Vega", "Veld", "Zenith",
}

// nameSuffixes decorate roughly half of all names; empty entries yield
// bare prefix names.
var nameSuffixes = [...]string{
	"", "", "", "", "", "",
	"Prime", "Minor", "Major", "Reach", "Gate",
	"Haven", "Drift", "Expanse", "Verge", "Hollow",
}

// rollName draws one name and resolves collisions against used, which
// counts how often each base name has appeared so far.
func rollName(rng *prng.Prng, used map[string]int) string {
	prefix := namePrefixes[rng.RandInt(0, len(namePrefixes)-1)]
	suffix := nameSuffixes[rng.RandInt(0, len(nameSuffixes)-1)]

	name := prefix
	if suffix != "" {
		name = prefix + " " + suffix
	}

	n := used[name]
	used[name] = n + 1
	if n > 0 {
		name = fmt.Sprintf("%s %s", name, roman(n+1))
	}
	return name
}

// roman renders n ≥ 1 as a roman numeral.
func roman(n int) string {
	var (
		vals = [...]int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
		syms = [...]string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	)
	var b strings.Builder
	for i, v := range vals {
		for n >= v {
			b.WriteString(syms[i])
			n -= v
		}
	}
	return b.String()
}
