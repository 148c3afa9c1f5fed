package rating

// Profile bundles the rating cascade thresholds and the advisor's per-
// rating ceiling table, surfaced as configuration rather than constants:
// named bundles plus room for a custom one.
type Profile struct {
	Name string

	// Cascade thresholds, tested top-down in the order Cascade applies them.
	ExplicitSexGoreThreshold   float64 // rule 1: sex_act or gore >= this -> 18+
	ChildRiskMinorThreshold    float64 // rule 2: child_risk > this ...
	ChildRiskCoThreshold       float64 // ... and (sex_act or violence) >= this -> 18+
	ExplicitViolenceThreshold  float64 // rule 3: violence or gore >= this -> 16+
	ModerateProfanityThreshold float64 // rule 4a: profanity >= this -> 12+
	ModerateDrugsThreshold     float64 // rule 4b: drugs >= this -> 12+
	ModerateNudityThreshold    float64 // rule 4c: nudity >= this -> 12+
	ModerateViolenceThreshold  float64 // rule 5: violence >= this -> 12+

	// Ceiling lets the advisor check a script's scores against the maximum
	// a given rating permits per dimension.
	Ceiling map[Rating]AggScores
}

// StandardProfile is the default cascade and ceiling table, taken directly
// from spec.md's literal thresholds.
var StandardProfile = &Profile{
	Name:                        "standard",
	ExplicitSexGoreThreshold:    0.8,
	ChildRiskMinorThreshold:     0.5,
	ChildRiskCoThreshold:        0.5,
	ExplicitViolenceThreshold:   0.4,
	ModerateProfanityThreshold:  0.5,
	ModerateDrugsThreshold:      0.4,
	ModerateNudityThreshold:     0.3,
	ModerateViolenceThreshold:   0.3,

	Ceiling: map[Rating]AggScores{
		R0:  {},
		R6:  {Violence: 0.2, Profanity: 0.1, ChildRisk: 0.1},
		R12: {Violence: 0.4, Gore: 0.2, Nudity: 0.2, Profanity: 0.3, Drugs: 0.2, ChildRisk: 0.2},
		R16: {Violence: 0.6, Gore: 0.4, SexAct: 0.3, Nudity: 0.5, Profanity: 0.6, Drugs: 0.5, ChildRisk: 0.4},
		R18: {Violence: 1, Gore: 1, SexAct: 1, Nudity: 1, Profanity: 1, Drugs: 1, ChildRisk: 1},
	},
}

// StrictProfile lowers the cascade thresholds across the board: content
// trips a stricter rating sooner.
var StrictProfile = &Profile{
	Name:                        "strict",
	ExplicitSexGoreThreshold:    0.65,
	ChildRiskMinorThreshold:     0.35,
	ChildRiskCoThreshold:        0.35,
	ExplicitViolenceThreshold:   0.3,
	ModerateProfanityThreshold:  0.35,
	ModerateDrugsThreshold:      0.3,
	ModerateNudityThreshold:     0.2,
	ModerateViolenceThreshold:   0.2,
	Ceiling:                     StandardProfile.Ceiling,
}

// PermissiveProfile raises the cascade thresholds — more content is
// tolerated before the rating steps up.
var PermissiveProfile = &Profile{
	Name:                        "permissive",
	ExplicitSexGoreThreshold:    0.9,
	ChildRiskMinorThreshold:     0.65,
	ChildRiskCoThreshold:        0.65,
	ExplicitViolenceThreshold:   0.55,
	ModerateProfanityThreshold:  0.65,
	ModerateDrugsThreshold:      0.55,
	ModerateNudityThreshold:     0.45,
	ModerateViolenceThreshold:   0.45,
	Ceiling:                     StandardProfile.Ceiling,
}

// GetProfile resolves a profile by name, defaulting to StandardProfile.
func GetProfile(name string) *Profile {
	switch name {
	case "strict":
		return StrictProfile
	case "permissive":
		return PermissiveProfile
	default:
		return StandardProfile
	}
}

// Cascade maps an aggregate vector to a rating and the reason tags for the
// first matching rule, per the profile's thresholds.
func Cascade(agg AggScores, p *Profile) (Rating, []string) {
	if p == nil {
		p = StandardProfile
	}

	if agg.SexAct >= p.ExplicitSexGoreThreshold || agg.Gore >= p.ExplicitSexGoreThreshold {
		return R18, []string{"explicit sexual or violent content"}
	}
	if agg.ChildRisk > p.ChildRiskMinorThreshold &&
		(agg.SexAct >= p.ChildRiskCoThreshold || agg.Violence >= p.ChildRiskCoThreshold) {
		return R18, []string{"risk involving minors"}
	}
	if agg.Violence >= p.ExplicitViolenceThreshold || agg.Gore >= p.ExplicitViolenceThreshold {
		return R16, []string{"explicit violence"}
	}
	if agg.Profanity >= p.ModerateProfanityThreshold || agg.Drugs >= p.ModerateDrugsThreshold || agg.Nudity >= p.ModerateNudityThreshold {
		return R12, []string{"moderate language/substances/nudity"}
	}
	if agg.Violence >= p.ModerateViolenceThreshold {
		return R12, []string{"moderate violence"}
	}
	return R6, nil
}
