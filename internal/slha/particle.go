package slha

import (
	"fmt"
	"strconv"
)

// Common aliases for PDG particle IDs, used by name-based decay lookups.
var smIDs = map[string]int{
	"d": 1, "u": 2, "s": 3, "c": 4, "b": 5, "t": 6,
	"e": 11, "ve": 12, "mu": 13, "vm": 14, "tau": 15, "vt": 16,
	"g": 21, "a": 22, "Z": 23, "W": 24,
}

var higgsIDs = map[string]int{
	"h": 25, "H0": 35, "A0": 36, "H+": 37,
}

var mssmIDs = map[string]int{
	"~dL": 1000001, "~uL": 1000002, "~sL": 1000003, "~cL": 1000004, "~b1": 1000005, "~t1": 1000006,
	"~eL": 1000011, "~ve": 1000012, "~muL": 1000013, "~vmu": 1000014, "~tau1": 1000015, "~vt": 1000016,
	"~dR": 2000001, "~uR": 2000002, "~sR": 2000003, "~cR": 2000004, "~b2": 2000005, "~t2": 2000006,
	"~eR": 2000011, "~veR": 2000012, "~muR": 2000013, "~vmuR": 2000014, "~tau2": 2000015, "~vtR": 2000016,
	"~g": 1000021, "~N1": 1000022, "~N2": 1000023, "~C1": 1000024, "~N3": 1000025, "~N4": 1000035, "~C2": 1000037, "~G": 1000039,
}

var particleIDs = func() map[string]int {
	ids := make(map[string]int, len(smIDs)+len(higgsIDs)+len(mssmIDs))
	for _, m := range []map[string]int{smIDs, higgsIDs, mssmIDs} {
		for name, id := range m {
			ids[name] = id
		}
	}
	return ids
}()

// LookupID maps a particle alias to its PDG ID.
func LookupID(name string) (int, error) {
	id, ok := particleIDs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParticle, name)
	}
	return id, nil
}

// ResolveID accepts either a registry alias or a numeric PDG ID.
func ResolveID(particle string) (int, error) {
	if id, ok := particleIDs[particle]; ok {
		return id, nil
	}
	if id, err := strconv.Atoi(particle); err == nil {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParticle, particle)
}
