package assessment

// ══════════════════════════════════════════════════════════════════════════════
// SUBTYPE PROFILES
// Presentation data for the twelve subtypes and the three operating loops.
// Read-only coaching copy; nothing here feeds back into classification.
// ══════════════════════════════════════════════════════════════════════════════

// Profile is the coaching description attached to a subtype.
type Profile struct {
	Subtype Subtype     `json:"subtype"`
	Name    string      `json:"name"`
	Family  DefaultType `json:"family"`
	Tagline string      `json:"tagline"`
	Summary string      `json:"summary"`
	Edge    []string    `json:"edge"`
	Risks   []string    `json:"risks"`

	// Complement names the subtype that covers this one's blind spots.
	// Blurred subtypes have no complement; their path is the reset journey.
	Complement Subtype `json:"complement,omitempty"`
}

// OperatingLoop describes the decision rhythm of a default type.
type OperatingLoop struct {
	Format      string `json:"format"`
	Description string `json:"description"`
}

// ProfileFor returns the profile for a subtype.
func ProfileFor(s Subtype) (Profile, bool) {
	p, ok := subtypeProfiles[s]
	return p, ok
}

// LoopFor returns the operating loop for a default type.
func LoopFor(d DefaultType) (OperatingLoop, bool) {
	l, ok := operatingLoops[d]
	return l, ok
}

var operatingLoops = map[DefaultType]OperatingLoop{
	DefaultArchitect: {
		Format:      "Thought → Emotion → Thought",
		Description: "You think first. Then you check how it feels logically. Then you re-validate before acting. Your actions are measured. You don't feel your way into clarity — you construct it.",
	},
	DefaultAlchemist: {
		Format:      "Emotion → Thought → Emotion",
		Description: "You feel first. Then you reflect on that feeling. Then you act — only if the energy is still intact. You're not indecisive — you're energetically attuned.",
	},
	DefaultBlurred: {
		Format:      "Disconnected",
		Description: "You jump between thoughts and feelings without a stable rhythm. Some days you plan like an Architect, other days you move like an Alchemist — but neither feels fully safe or sustainable.",
	},
}

var subtypeProfiles = map[Subtype]Profile{
	SubtypeMasterStrategist: {
		Subtype: SubtypeMasterStrategist,
		Name:    "Master Strategist",
		Family:  DefaultArchitect,
		Tagline: "You don't follow structure — you design it.",
		Summary: "As a Master Strategist, you see five moves ahead — but you don't show your hand. You design from a distance, often holding space between yourself and the chaos below. Your strength is in non-reactivity. You pause, recalibrate, and act when the system is ready.",
		Edge:    []string{"Strategic foresight", "Calm decision-making under pressure", "Systemic clarity and scalable frameworks", "Pattern recognition that simplifies chaos"},
		Risks:   []string{"Avoidance of emotional confrontation", "Delayed action due to overplanning", "Isolation from team or creative partners"},

		Complement: SubtypeVisionaryOracle,
	},
	SubtypeSystemisedBuilder: {
		Subtype: SubtypeSystemisedBuilder,
		Name:    "Systemised Builder",
		Family:  DefaultArchitect,
		Tagline: "You don't chase momentum — you build it, brick by brick.",
		Summary: "You are the builder behind many visible wins — but you don't seek the spotlight. You execute with intention, break goals into parts, and deliver again and again. Your rhythm is not glamorous — it's sustainable.",
		Edge:    []string{"Consistent follow-through", "Execution without burnout", "Clarity in chaos", "High-quality delivery"},
		Risks:   []string{"Over-control of process", "Bottlenecking due to solo task-loading", "Resistance to flow-based collaboration"},

		Complement: SubtypeMagneticPerfectionist,
	},
	SubtypeInternalAnalyzer: {
		Subtype: SubtypeInternalAnalyzer,
		Name:    "Internal Analyzer",
		Family:  DefaultArchitect,
		Tagline: "You don't just want to get it right — you need to know why it's right.",
		Summary: "You are the deep thinker, the system optimizer, the pattern master. You crave precision — but not just in action. In logic. In reasoning. In why. You observe everything. You spot gaps others overlook.",
		Edge:    []string{"Unparalleled depth, logic, foresight", "Operational excellence", "Design precision", "Intellectual rigour"},
		Risks:   []string{"Taking too long to move", "Over-perfecting when something needs shipping", "Isolation when overwhelmed"},

		Complement: SubtypeMagneticPerfectionist,
	},
	SubtypeUltimateStrategist: {
		Subtype: SubtypeUltimateStrategist,
		Name:    "Ultimate Strategist",
		Family:  DefaultArchitect,
		Tagline: "You don't move often — but when you do, everything moves with you.",
		Summary: "You are the master of operational patterning. Your mind doesn't generate images — it composes frameworks. You delegate with ease, make fast pivots without losing your frame, and optimize in silence.",
		Edge:    []string{"High-speed pattern recognition", "Strategic MVP execution", "Frameworks that scale under pressure", "Calm clarity in complex spaces"},
		Risks:   []string{"May overcalculate and miss fast windows", "May under-communicate due to assumed clarity", "May resist collaborative chaos"},

		Complement: SubtypeUltimateAlchemist,
	},
	SubtypeVisionaryOracle: {
		Subtype: SubtypeVisionaryOracle,
		Name:    "Visionary Oracle",
		Family:  DefaultAlchemist,
		Tagline: "Generates visions, leads through creative breakthroughs.",
		Summary: "Generates visions, leads through creative breakthroughs. Channels fresh perspectives, acts through inspiration. Works in energy surges, needs buffer zones for idea protection.",
		Edge:    []string{"Creative breakthrough generation", "Fresh perspective channeling", "Energy-based innovation", "Inspirational leadership"},
		Risks:   []string{"Energy surge burnout", "Idea protection challenges", "Overwhelm from building alone", "Vision-execution gap stress"},

		Complement: SubtypeSystemisedBuilder,
	},
	SubtypeMagneticPerfectionist: {
		Subtype: SubtypeMagneticPerfectionist,
		Name:    "Magnetic Perfectionist",
		Family:  DefaultAlchemist,
		Tagline: "You don't polish to impress — you refine until it feels right.",
		Summary: "You create from emotional precision. The work is not done when it works; it is done when it feels aligned. People trust what you put your name on because you never ship anything hollow.",
		Edge:    []string{"Emotional refinement", "Polished delivery that feels felt", "Natural taste for alignment", "Creative authority"},
		Risks:   []string{"Stalling when something isn't aligned", "Over-tweaking past usefulness", "Hiding behind the work"},

		Complement: SubtypeSystemisedBuilder,
	},
	SubtypeEnergeticEmpath: {
		Subtype: SubtypeEnergeticEmpath,
		Name:    "Energetic Empath",
		Family:  DefaultAlchemist,
		Tagline: "You don't push to progress — you feel your way forward.",
		Summary: "You read rooms, people, and undercurrents before a word is spoken. Your business grows through resonance: when the energy is right, everything moves; when it's off, nothing does.",
		Edge:    []string{"Deep intuitive intelligence", "Natural energetic alignment", "Sensitive creation that resonates", "Vision that speaks to undercurrent"},
		Risks:   []string{"Taking on others' emotional weight", "Stopping when overwhelmed", "Avoiding structure", "Losing clarity in noisy environments"},

		Complement: SubtypeMasterStrategist,
	},
	SubtypeUltimateAlchemist: {
		Subtype: SubtypeUltimateAlchemist,
		Name:    "Ultimate Alchemist",
		Family:  DefaultAlchemist,
		Tagline: "You don't just follow energy — you master it, systemise it, and scale it.",
		Summary: "You have learned to hold both currents: intuition sets the direction, structure carries it. You lead intuitive teams without losing the plot and build containers that honour your rhythm.",
		Edge:    []string{"Energy + logic harmony", "Emotional attunement and structural control", "Ability to lead intuitive teams", "Deep internal rhythm with flexible structure"},
		Risks:   []string{"Returning to burnout loops when pressured", "Defaulting into helper mode", "Holding emotional weight for others"},

		Complement: SubtypeUltimateStrategist,
	},
	SubtypeOverthinker: {
		Subtype: SubtypeOverthinker,
		Name:    "Overthinker",
		Family:  DefaultBlurred,
		Tagline: "You don't feel clear — because you've been trained to override your truth.",
		Summary: "You override instinct with logic — and then distrust your logic. You're afraid of choosing wrong, so you choose nothing. You mimic other people's energy — but can't sustain it.",
		Edge:    []string{"High analytical capacity", "Pattern recognition", "Adaptability"},
		Risks:   []string{"Loop switching leads to burnout", "Identity erosion", "Delayed action causes misalignment"},
	},
	SubtypePerformer: {
		Subtype: SubtypePerformer,
		Name:    "Performer",
		Family:  DefaultBlurred,
		Tagline: "You don't feel clear — because you've been too busy playing a role to hear yourself.",
		Summary: "You mirror other people's confidence — even when you feel unsure. You choose what's expected — not what's aligned. You crave applause — but can't sit with silence.",
		Edge:    []string{"Adaptability", "Social intelligence", "Performance capability"},
		Risks:   []string{"Validation addiction", "Emotional manipulation patterns", "Burnout from inauthentic energy"},
	},
	SubtypeSelfForsaker: {
		Subtype: SubtypeSelfForsaker,
		Name:    "Self-Forsaker",
		Family:  DefaultBlurred,
		Tagline: "You don't feel clear — because you've been trained to override your truth.",
		Summary: "You were likely an origin Alchemist. But somewhere along the way, you shut off that energetic truth. You now operate through strategy, logic, and control — but it feels draining.",
		Edge:    []string{"Mastered logical thinking", "Structure and systems", "High achievement capability"},
		Risks:   []string{"Emotional numbness", "Identity disconnection", "Loss of trust in emotional compass"},
	},
	SubtypeSelfBetrayer: {
		Subtype: SubtypeSelfBetrayer,
		Name:    "Self-Betrayer",
		Family:  DefaultBlurred,
		Tagline: "You don't feel clear — because you've been trained to distrust your clarity.",
		Summary: "You were likely an origin Architect. But over time, you lost trust in your structured thinking. Now, you chase emotional safety, even when it contradicts logic.",
		Edge:    []string{"Emotional attunement", "Expressive capability", "Reactive intelligence"},
		Risks:   []string{"Emotional over-attachment", "Avoidance of structure", "Identity instability", "Constant need for validation"},
	},
}
