package bones

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NotFound is the bone name reported when no tier resolves the target.
const NotFound = ""

// Tier identifies the matching strategy that produced a resolution.
type Tier string

const (
	TierNone      Tier = "none"
	TierExact     Tier = "exact"
	TierAlias     Tier = "alias"
	TierRightHand Tier = "right_hand"
	TierLeftHand  Tier = "left_hand"
	TierGeneric   Tier = "generic"
)

// rigPrefix is the token stripped from targets by the generic heuristic.
const rigPrefix = "mixamorig"

var (
	rightHandFragments = []string{"righthand", "right_hand", "hand_r", "handr"}
	leftHandFragments  = []string{"lefthand", "left_hand", "hand_l", "handl"}
)

// Attempt records the outcome of one tier.
type Attempt struct {
	Tier    Tier   `json:"tier"`
	Matched bool   `json:"matched"`
	Detail  string `json:"detail"`
}

// Resolution is the result of resolving a target bone against a skeleton.
type Resolution struct {
	Target string `json:"target"`
	// Bone is the skeleton bone to attach to, or NotFound.
	Bone     string    `json:"bone"`
	Tier     Tier      `json:"tier"`
	Found    bool      `json:"found"`
	Attempts []Attempt `json:"attempts"`
}

// Resolver maps requested bone identifiers onto the bone names of arbitrary
// skeletons. It is immutable and safe for concurrent use.
type Resolver struct {
	aliases []AliasFamily
	logger  *zap.Logger
}

// NewResolver creates a resolver. A nil alias table selects DefaultAliases and
// a nil logger discards the diagnostic trace.
func NewResolver(aliases []AliasFamily, logger *zap.Logger) *Resolver {
	if aliases == nil {
		aliases = defaultAliases
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{aliases: cloneAliases(aliases), logger: logger}
}

// Aliases returns a copy of the alias table used by the resolver.
func (r *Resolver) Aliases() []AliasFamily {
	return cloneAliases(r.aliases)
}

// Resolve finds the skeleton bone that best matches target.
//
// Tiers are evaluated in strict order and the first hit wins: exact name,
// alias family, then the substring heuristics. A miss is not an error; the
// returned Resolution has Found=false and Bone=NotFound.
func (r *Resolver) Resolve(sk *Skeleton, target string) Resolution {
	res := Resolution{Target: target, Bone: NotFound, Tier: TierNone}
	l := r.logger.With(zap.String("target", target))

	if sk.Has(target) {
		res.record(TierExact, true, "target present in skeleton")
		l.Debug("Direct bone match", zap.String("bone", target))
		return res.hit(TierExact, target)
	}
	res.record(TierExact, false, "target not present in skeleton")

	if bone, family, ok := r.matchAlias(sk, target); ok {
		res.record(TierAlias, true, fmt.Sprintf("variant %q of family %q", bone, family))
		l.Debug("Bone found via mapping", zap.String("bone", bone), zap.String("family", family))
		return res.hit(TierAlias, bone)
	}
	res.record(TierAlias, false, r.aliasMissDetail(target))

	rules := heuristicRules(target)
	tier, bone, ok := matchHeuristic(sk, rules)
	for _, rule := range rules {
		switch {
		case !rule.applies:
			res.record(rule.tier, false, rule.skipReason)
		case ok && rule.tier == tier:
			res.record(rule.tier, true, fmt.Sprintf("matched %q", bone))
		case ok:
			res.record(rule.tier, false, fmt.Sprintf("no candidate before %q matched", bone))
		default:
			res.record(rule.tier, false, "no candidate matched")
		}
	}
	if ok {
		l.Debug("Bone found via partial match", zap.String("bone", bone), zap.String("tier", string(tier)))
		return res.hit(tier, bone)
	}

	l.Warn("No bone found", zap.Strings("available", sk.Names()))
	return res
}

// matchAlias scans every family that lists target as a variant and returns
// the first of that family's variants present in the skeleton.
func (r *Resolver) matchAlias(sk *Skeleton, target string) (bone, family string, ok bool) {
	for _, f := range r.aliases {
		if !f.Contains(target) {
			continue
		}
		for _, v := range f.Variants {
			if sk.Has(v) {
				return v, f.Canonical, true
			}
		}
	}
	return "", "", false
}

func (r *Resolver) aliasMissDetail(target string) string {
	var families []string
	for _, f := range r.aliases {
		if f.Contains(target) {
			families = append(families, f.Canonical)
		}
	}
	if len(families) == 0 {
		return "target is not a known alias"
	}
	return fmt.Sprintf("no variant of %s present in skeleton", strings.Join(families, ", "))
}

type heuristicRule struct {
	tier       Tier
	applies    bool
	skipReason string
	match      func(lowerName string) bool
}

// heuristicRules builds the substring rules for target in evaluation order.
func heuristicRules(target string) []heuristicRule {
	lower := strings.ToLower(target)
	remainder := strings.Replace(lower, rigPrefix, "", 1)

	return []heuristicRule{
		{
			tier:       TierRightHand,
			applies:    strings.Contains(lower, "right") && strings.Contains(lower, "hand"),
			skipReason: "target is not a right hand",
			match: func(name string) bool {
				return containsAny(name, rightHandFragments) ||
					(strings.Contains(name, "hand") && strings.Contains(name, "r"))
			},
		},
		{
			tier:       TierLeftHand,
			applies:    strings.Contains(lower, "left") && strings.Contains(lower, "hand"),
			skipReason: "target is not a left hand",
			match: func(name string) bool {
				return containsAny(name, leftHandFragments) ||
					(strings.Contains(name, "hand") && strings.Contains(name, "l"))
			},
		},
		{
			// An empty remainder accepts the first bone.
			tier:    TierGeneric,
			applies: true,
			match: func(name string) bool {
				return strings.Contains(name, remainder)
			},
		},
	}
}

// matchHeuristic walks the skeleton in iteration order and, for each bone,
// tries every applicable rule in order. The first bone accepted by any rule
// wins.
func matchHeuristic(sk *Skeleton, rules []heuristicRule) (Tier, string, bool) {
	for _, name := range sk.Names() {
		lower := strings.ToLower(name)
		for _, rule := range rules {
			if rule.applies && rule.match(lower) {
				return rule.tier, name, true
			}
		}
	}
	return TierNone, NotFound, false
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func (res *Resolution) record(tier Tier, matched bool, detail string) {
	res.Attempts = append(res.Attempts, Attempt{Tier: tier, Matched: matched, Detail: detail})
}

func (res Resolution) hit(tier Tier, bone string) Resolution {
	res.Bone = bone
	res.Tier = tier
	res.Found = true
	return res
}
