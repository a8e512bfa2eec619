package assessment

// ══════════════════════════════════════════════════════════════════════════════
// BUILT-IN CATALOG
// The production question banks. Question IDs are global and stage-fixed:
// 1-6 default type, 7-12 awareness (three banks sharing IDs), 13 path choice,
// 14-19 subtype (six banks sharing IDs), 20-23 validation (three banks).
// ══════════════════════════════════════════════════════════════════════════════

// Option constructors scoped to one stage each; they keep the literal data
// below readable.

func typeOpt(id OptionID, text string, cat TypeCategory) Option {
	return Option{ID: id, Text: text, Type: cat}
}

func awareOpt(id OptionID, text string, opposite bool) Option {
	return Option{ID: id, Text: text, Opposite: opposite}
}

func pathOpt(id OptionID, text string, p PathChoice) Option {
	return Option{ID: id, Text: text, Path: p}
}

func subOpt(id OptionID, text string, s Subtype) Option {
	return Option{ID: id, Text: text, Subtype: s}
}

// DefaultCatalogData returns the built-in catalog configuration.
// Callers must pass it through NewCatalog so it is validated at startup.
func DefaultCatalogData() CatalogData {
	return CatalogData{
		DefaultType: defaultTypeQuestions(),
		Awareness: map[DefaultType][]Question{
			DefaultArchitect: awarenessArchitectBank(),
			DefaultAlchemist: awarenessAlchemistBank(),
			DefaultBlurred:   awarenessBlurredBank(),
		},
		Path: pathQuestion(),
		Subtype: map[BankKey][]Question{
			{DefaultArchitect, PathEarly}:     subtypeArchitectEarly(),
			{DefaultArchitect, PathDeveloped}: subtypeArchitectDeveloped(),
			{DefaultAlchemist, PathEarly}:     subtypeAlchemistEarly(),
			{DefaultAlchemist, PathDeveloped}: subtypeAlchemistDeveloped(),
			{DefaultBlurred, PathEarly}:       subtypeBlurredEarly(),
			{DefaultBlurred, PathDeveloped}:   subtypeBlurredDeveloped(),
		},
		Validation: map[DefaultType][]Question{
			DefaultArchitect: validationArchitectBank(),
			DefaultAlchemist: validationAlchemistBank(),
			DefaultBlurred:   validationBlurredBank(),
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 1: Default DNA block (Q1-Q6)
// ─────────────────────────────────────────────────────────────────────────────

func defaultTypeQuestions() []Question {
	return []Question{
		{ID: 1, Text: "You're going away for the weekend. How do you prepare the night before?", Options: []Option{
			typeOpt(OptionA, "I mentally run through what I need and pack once — essentials are covered.", CategoryArchitect),
			typeOpt(OptionB, "I write a full list, check everything off, repack a few times, still feel uneasy.", CategoryBlurred),
			typeOpt(OptionC, "I throw things in last minute and trust it'll be fine.", CategoryAlchemist),
			typeOpt(OptionD, "I pack, unpack, and get overwhelmed deciding what I even need.", CategoryUndeclared),
		}},
		{ID: 2, Text: "A close friend unintentionally hurts your feelings. How do you respond?", Options: []Option{
			typeOpt(OptionA, "I'll express it — maybe now, maybe later — but it will come out.", CategoryAlchemist),
			typeOpt(OptionB, "I won't say anything — they'll figure it out or I'll quietly move on.", CategoryArchitect),
			typeOpt(OptionC, "I react suddenly, then second-guess if I was overdramatic.", CategoryBlurred),
			typeOpt(OptionD, "I feel stuck about whether I should say something or not.", CategoryUndeclared),
		}},
		{ID: 3, Text: "You walk into a room full of strangers. What do you do?", Options: []Option{
			typeOpt(OptionA, "I linger around and wait for someone to notice or invite me.", CategoryBlurred),
			typeOpt(OptionB, "I act on how I feel — I might blend in or suddenly become the centre of attention.", CategoryAlchemist),
			typeOpt(OptionC, "I observe quietly, scan the room, and engage when it makes sense.", CategoryArchitect),
			typeOpt(OptionD, "I'm unsure how to show up — I feel pressure to act right.", CategoryUndeclared),
		}},
		{ID: 4, Text: "You've committed to waking up at 6am for a week. Day 3, you're exhausted. What happens?", Options: []Option{
			typeOpt(OptionA, "I feel torn — I want to keep going but can't force myself either.", CategoryBlurred),
			typeOpt(OptionB, "I ask myself if the reason still matters — if not, I adjust without guilt.", CategoryAlchemist),
			typeOpt(OptionC, "I sleep in, feel bad, and try again tomorrow.", CategoryUndeclared),
			typeOpt(OptionD, "I stick to it. Fatigue doesn't override commitment unless it's serious.", CategoryArchitect),
		}},
		{ID: 5, Text: "You've completed a project and it performs well. How do you feel about it?", Options: []Option{
			typeOpt(OptionA, "If the result is strong, I'm satisfied — no need to change anything.", CategoryArchitect),
			typeOpt(OptionB, "I immediately wonder how it could have been even better.", CategoryAlchemist),
			typeOpt(OptionC, "I feel good but uneasy — maybe I missed something important.", CategoryBlurred),
			typeOpt(OptionD, "I can't tell if I'm happy or not — depends what others say.", CategoryUndeclared),
		}},
		{ID: 6, Text: "You're pursuing a goal no one else has achieved. How do you think about it?", Options: []Option{
			typeOpt(OptionA, "I need to see a path or example — otherwise I'm not sure it's achievable.", CategoryArchitect),
			typeOpt(OptionB, "Even if no one's done it, I know it's possible — I just need the steps.", CategoryAlchemist),
			typeOpt(OptionC, "I doubt myself, but I still try in case it works out.", CategoryBlurred),
			typeOpt(OptionD, "I switch between confidence and confusion depending on the day.", CategoryUndeclared),
		}},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 2: Awareness block (Q7-Q12)
// The bank served depends on the stage-1 output: each measures agreement with
// the opposite operating mode. Option D never counts toward the raw score.
// ─────────────────────────────────────────────────────────────────────────────

const noneOfThese = "None of these reflect how I would think or act."

// awarenessArchitectBank measures an Architect's awareness of Alchemist mode.
func awarenessArchitectBank() []Question {
	return []Question{
		{ID: 7, Text: "You're preparing for something two weeks away. What do you think is the best way to plan?", Options: []Option{
			awareOpt(OptionA, "I feel into what needs to happen and adjust flow daily.", true),
			awareOpt(OptionB, "I follow inspiration but stay close to the end goal.", true),
			awareOpt(OptionC, "I refine the plan repeatedly based on how it feels.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 8, Text: "Someone challenges your perspective in a group conversation. What's the best way to respond?", Options: []Option{
			awareOpt(OptionA, "I speak with passion about why it matters to me.", true),
			awareOpt(OptionB, "I trust my intuition and share what I feel is true.", true),
			awareOpt(OptionC, "I own my stance but allow room for emotional nuance.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 9, Text: "You're working with someone who's doing things \"wrong.\" What's the best way to respond?", Options: []Option{
			awareOpt(OptionA, "I consider their approach before jumping in.", true),
			awareOpt(OptionB, "I tune into the dynamic and adapt emotionally.", true),
			awareOpt(OptionC, "If I care, I may just do it myself — out of frustration or love.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 10, Text: "When pursuing a long-term goal (6–12 months), what's the best way to stay on track?", Options: []Option{
			awareOpt(OptionA, "Tap into emotional momentum to keep going.", true),
			awareOpt(OptionB, "Build inspiration and energy into the journey.", true),
			awareOpt(OptionC, "Use vision boards, journaling, or feeling-based check-ins.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 11, Text: "You're training someone new. What's the best way to teach them?", Options: []Option{
			awareOpt(OptionA, "Guide them through the why behind the work.", true),
			awareOpt(OptionB, "Adjust based on their energy and confidence.", true),
			awareOpt(OptionC, "Let them learn by feeling through it, not just logic.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 12, Text: "When something doesn't feel right but makes sense logically — what's the best next step?", Options: []Option{
			awareOpt(OptionA, "Pause and reflect on what the resistance means.", true),
			awareOpt(OptionB, "Trust that discomfort may signal misalignment.", true),
			awareOpt(OptionC, "Explore intuition to uncover what's missing.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
	}
}

// awarenessAlchemistBank measures an Alchemist's awareness of Architect mode.
func awarenessAlchemistBank() []Question {
	return []Question{
		{ID: 7, Text: "You're preparing for something two weeks away. What do you think is the best way to plan?", Options: []Option{
			awareOpt(OptionA, "I map out each phase and allocate time per task.", true),
			awareOpt(OptionB, "I build in buffers and list dependencies before I start.", true),
			awareOpt(OptionC, "I reverse-engineer the deadline to set milestones.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 8, Text: "Someone challenges your perspective in a group conversation. What's the best way to respond?", Options: []Option{
			awareOpt(OptionA, "I ask questions to understand their viewpoint calmly.", true),
			awareOpt(OptionB, "I pause and walk them through my structured reasoning.", true),
			awareOpt(OptionC, "I respond logically, not emotionally, even if I disagree.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 9, Text: "You're working with someone who's doing things \"wrong.\" What's the best way to respond?", Options: []Option{
			awareOpt(OptionA, "I show them the correct system and explain why.", true),
			awareOpt(OptionB, "I assess whether it's a training or logic gap.", true),
			awareOpt(OptionC, "I offer structured feedback with reasoning.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 10, Text: "When pursuing a long-term goal (6–12 months), what's the best way to stay on track?", Options: []Option{
			awareOpt(OptionA, "Set structured checkpoints and measurable metrics.", true),
			awareOpt(OptionB, "Track time spent vs. outcome weekly.", true),
			awareOpt(OptionC, "Use data to adjust pace and process.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 11, Text: "You're training someone new. What's the best way to teach them?", Options: []Option{
			awareOpt(OptionA, "Provide written SOPs and visual aids.", true),
			awareOpt(OptionB, "Give structured tasks with feedback loops.", true),
			awareOpt(OptionC, "Break the learning into logical stages.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
		{ID: 12, Text: "When something doesn't feel right but makes sense logically — what's the best next step?", Options: []Option{
			awareOpt(OptionA, "Recheck data or assumptions to eliminate bias.", true),
			awareOpt(OptionB, "Delay action until logic is fully sound.", true),
			awareOpt(OptionC, "Trust the structure over feelings in this case.", true),
			awareOpt(OptionD, noneOfThese, false),
		}},
	}
}

// awarenessBlurredBank mixes both modes: Q7-9 measure Architect awareness,
// Q10-12 measure Alchemist awareness.
func awarenessBlurredBank() []Question {
	architect := awarenessAlchemistBank()
	alchemist := awarenessArchitectBank()
	return []Question{
		architect[0], architect[1], architect[2],
		alchemist[3], alchemist[4], alchemist[5],
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 3: Path choice (Q13)
// ─────────────────────────────────────────────────────────────────────────────

func pathQuestion() Question {
	return Question{ID: 13, Text: "Which best describes where you are in your business journey?", Options: []Option{
		pathOpt(OptionA, "I'm just starting out — my business is an idea or under a year old.", PathEarly),
		pathOpt(OptionB, "I run an established business with consistent revenue.", PathDeveloped),
		pathOpt(OptionC, "I'm building a side venture alongside other commitments.", PathEarly),
		pathOpt(OptionD, "I lead a team and I'm focused on scaling what already works.", PathDeveloped),
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 4: Subtype detection (Q14-Q19)
// Six banks: one per (family, path). Every option votes for exactly one
// subtype of the bank's family.
// ─────────────────────────────────────────────────────────────────────────────

func subtypeArchitectEarly() []Question {
	return []Question{
		{ID: 14, Text: "You've just had an idea you're excited about, but you're not sure how to begin. What's your first move?", Options: []Option{
			subOpt(OptionA, "I outline the steps from A to Z and start mapping the tools or systems I'd need to deliver it properly.", SubtypeInternalAnalyzer),
			subOpt(OptionB, "I write down everything I'd want it to include — even if I don't know how I'll get there yet.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "I sketch out a basic version and start testing how it might work.", SubtypeUltimateStrategist),
			subOpt(OptionD, "I pause to define the real problem it solves before I do anything else.", SubtypeMasterStrategist),
		}},
		{ID: 15, Text: "You've written a rough outline for a course or product. What do you naturally do next?", Options: []Option{
			subOpt(OptionA, "I check if each part connects logically and improve the structure before building anything.", SubtypeInternalAnalyzer),
			subOpt(OptionB, "I open up a tool and start creating the first few sections to see how it feels in action.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "I make a checklist of every component and start working through it step-by-step.", SubtypeUltimateStrategist),
			subOpt(OptionD, "I stop to re-question the core idea: is this still the right thing to build?", SubtypeMasterStrategist),
		}},
		{ID: 16, Text: "A friend asks you, 'How will your new service work?' What do you instinctively describe first?", Options: []Option{
			subOpt(OptionA, "The reason I'm offering it and the transformation it's built to deliver.", SubtypeMasterStrategist),
			subOpt(OptionB, "The tools, steps, and delivery flow — exactly how someone would go through it.", SubtypeUltimateStrategist),
			subOpt(OptionC, "The logic behind the framework — why each part exists and how it links to the bigger picture.", SubtypeInternalAnalyzer),
			subOpt(OptionD, "I say 'let me show you' — then pull up a mock-up or system to demonstrate.", SubtypeSystemisedBuilder),
		}},
		{ID: 17, Text: "You've joined a mastermind group brainstorming ways to improve their businesses. How do you contribute?", Options: []Option{
			subOpt(OptionA, "I start drawing on the whiteboard — mapping steps, bottlenecks, or a better way to do things.", SubtypeSystemisedBuilder),
			subOpt(OptionB, "I stay quiet until I've listened deeply, then share a clear plan that changes the direction.", SubtypeUltimateStrategist),
			subOpt(OptionC, "I suggest ways they could simplify and scale — I'm always thinking about leverage.", SubtypeMasterStrategist),
			subOpt(OptionD, "I ask focused questions to help them think better, and naturally start outlining the structure.", SubtypeInternalAnalyzer),
		}},
		{ID: 18, Text: "You've got a notebook full of business ideas. How do you choose which one to act on?", Options: []Option{
			subOpt(OptionA, "I compare them logically — which solves the biggest problem and has the most potential to scale?", SubtypeMasterStrategist),
			subOpt(OptionB, "I test parts of a few ideas to see which one feels smooth to build and execute.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "I pick the idea with the clearest delivery process — I like knowing exactly how I'd create it.", SubtypeInternalAnalyzer),
			subOpt(OptionD, "I ask which idea is easiest to explain — if I can map it cleanly, I know I'll build it well.", SubtypeUltimateStrategist),
		}},
		{ID: 19, Text: "A friend asks for help turning their idea into something real. What's your instinctive first step?", Options: []Option{
			subOpt(OptionA, "I draw out a clear plan — what needs to be done, in what order, and by when.", SubtypeMasterStrategist),
			subOpt(OptionB, "I offer to set up the first few tools or tech pieces to get things moving.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "I start mapping the entire process into systems — I want everything running smoothly early on.", SubtypeInternalAnalyzer),
			subOpt(OptionD, "I ask them to describe their end goal in one sentence, then reverse-engineer it.", SubtypeUltimateStrategist),
		}},
	}
}

func subtypeArchitectDeveloped() []Question {
	return []Question{
		{ID: 14, Text: "Revenue has plateaued for two quarters. What's your first move?", Options: []Option{
			subOpt(OptionA, "I audit every funnel stage and isolate where the numbers break down.", SubtypeInternalAnalyzer),
			subOpt(OptionB, "I rebuild the weakest operational system before touching strategy.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "I recalculate the whole model and reposition — quietly, without drama.", SubtypeUltimateStrategist),
			subOpt(OptionD, "I step back and re-question the strategy: is this still the right market?", SubtypeMasterStrategist),
		}},
		{ID: 15, Text: "You're hiring a senior operator. What do you screen for first?", Options: []Option{
			subOpt(OptionA, "Whether their reasoning holds up when I walk through their past decisions.", SubtypeInternalAnalyzer),
			subOpt(OptionB, "Whether they can take an ambiguous brief and ship a working system.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "Whether I could delegate a whole function to them and never think about it again.", SubtypeUltimateStrategist),
			subOpt(OptionD, "Whether they see the same three-year picture I do.", SubtypeMasterStrategist),
		}},
		{ID: 16, Text: "A board member asks how the business really works. What do you reach for?", Options: []Option{
			subOpt(OptionA, "The strategic narrative — where we play and why we win.", SubtypeMasterStrategist),
			subOpt(OptionB, "The one-page operating model — I keep it simplified on purpose.", SubtypeUltimateStrategist),
			subOpt(OptionC, "The metrics deck — every claim tied to a number.", SubtypeInternalAnalyzer),
			subOpt(OptionD, "A live walkthrough of the actual systems doing the work.", SubtypeSystemisedBuilder),
		}},
		{ID: 17, Text: "Your leadership team disagrees on next year's priorities. What's your role in the room?", Options: []Option{
			subOpt(OptionA, "I map the options on the whiteboard until the trade-offs are visible.", SubtypeSystemisedBuilder),
			subOpt(OptionB, "I listen, recalculate, and state the position I'll back — once.", SubtypeUltimateStrategist),
			subOpt(OptionC, "I reframe the debate around leverage: which bet compounds?", SubtypeMasterStrategist),
			subOpt(OptionD, "I pressure-test each argument until only the sound ones survive.", SubtypeInternalAnalyzer),
		}},
		{ID: 18, Text: "You're offered two acquisition targets. How do you decide?", Options: []Option{
			subOpt(OptionA, "Which one strengthens the long-term strategic position.", SubtypeMasterStrategist),
			subOpt(OptionB, "Which one's operations I could integrate cleanly within a quarter.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "Which one's numbers survive my diligence model.", SubtypeInternalAnalyzer),
			subOpt(OptionD, "Which one I can run with the least ongoing attention from me.", SubtypeUltimateStrategist),
		}},
		{ID: 19, Text: "A founder friend asks you to fix their struggling company. Where do you start?", Options: []Option{
			subOpt(OptionA, "A ninety-day plan with owners and deadlines on every line.", SubtypeMasterStrategist),
			subOpt(OptionB, "Inside the delivery pipeline — I fix the machine first.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "With their data — I won't touch anything until I've measured it.", SubtypeInternalAnalyzer),
			subOpt(OptionD, "By asking what the company should look like in one sentence, then cutting everything else.", SubtypeUltimateStrategist),
		}},
	}
}

func subtypeAlchemistEarly() []Question {
	return []Question{
		{ID: 14, Text: "You've just had an idea you're excited about. What happens in the first hour?", Options: []Option{
			subOpt(OptionA, "I see the whole future version of it instantly and start sketching the vision.", SubtypeVisionaryOracle),
			subOpt(OptionB, "I start shaping it immediately — it has to feel right before I show anyone.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I call someone whose energy I trust and talk it into existence.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I feel the excitement, then deliberately structure it so it actually ships.", SubtypeUltimateAlchemist),
		}},
		{ID: 15, Text: "You're building your first offer. What does your process look like?", Options: []Option{
			subOpt(OptionA, "Bursts of inspired output with gaps in between — it comes when it comes.", SubtypeVisionaryOracle),
			subOpt(OptionB, "I refine every detail until it matches the picture in my head.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I co-create with early clients — their reactions tell me what it wants to be.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I alternate: feel into the vision, then lock a piece down, then feel again.", SubtypeUltimateAlchemist),
		}},
		{ID: 16, Text: "A launch flops. How do you respond?", Options: []Option{
			subOpt(OptionA, "I'm already excited about the next, better version — the flop confirms the timing was off.", SubtypeVisionaryOracle),
			subOpt(OptionB, "It stings deeply — it went out before it was truly ready and I knew it.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I need to process the emotional hit before I can look at what happened.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I let myself feel it for a day, then rebuild the launch with what I learned.", SubtypeUltimateAlchemist),
		}},
		{ID: 17, Text: "How do you show up in a room of potential clients?", Options: []Option{
			subOpt(OptionA, "I paint the future — people remember the picture I gave them.", SubtypeVisionaryOracle),
			subOpt(OptionB, "Polished — everything I present is exactly as I intended it.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I read the room and meet people where they are — they open up fast.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "Magnetic but deliberate — I know exactly which version of the story this room needs.", SubtypeUltimateAlchemist),
		}},
		{ID: 18, Text: "You have five ideas and can only build one. How do you choose?", Options: []Option{
			subOpt(OptionA, "The one I can't stop seeing — it chooses me.", SubtypeVisionaryOracle),
			subOpt(OptionB, "The one I know I can execute to my own standard.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "The one that lights me up when I talk about it with others.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "The one where the vision and a realistic container actually meet.", SubtypeUltimateAlchemist),
		}},
		{ID: 19, Text: "A friend asks you to help launch their passion project. What do you offer first?", Options: []Option{
			subOpt(OptionA, "I expand their vision — I show them it's three times bigger than they think.", SubtypeVisionaryOracle),
			subOpt(OptionB, "I help them refine it until it's something they'd be proud to put their name on.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I hold space — I help them untangle the fear that's really in the way.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I turn their feeling into a shape: an offer, a date, a first step.", SubtypeUltimateAlchemist),
		}},
	}
}

func subtypeAlchemistDeveloped() []Question {
	return []Question{
		{ID: 14, Text: "Your established brand feels stale to you. What do you do?", Options: []Option{
			subOpt(OptionA, "I've already seen the next evolution — the team just has to catch up.", SubtypeVisionaryOracle),
			subOpt(OptionB, "I rework it privately until the new version feels undeniable.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I go back to my audience — their energy tells me where the brand wants to go.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I schedule a deliberate reinvention cycle instead of burning it down.", SubtypeUltimateAlchemist),
		}},
		{ID: 15, Text: "How do you run your team day to day?", Options: []Option{
			subOpt(OptionA, "I set direction in bursts of vision; others translate it into routine.", SubtypeVisionaryOracle),
			subOpt(OptionB, "High standards, clearly modelled — my team knows what finished looks like.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I manage energy first — a depleted team can't deliver anything true.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "Emotionally attuned but structured — rituals, rhythms, and real containers.", SubtypeUltimateAlchemist),
		}},
		{ID: 16, Text: "A major client relationship is wobbling. Your instinct?", Options: []Option{
			subOpt(OptionA, "Recast the relationship around the bigger future we could build together.", SubtypeVisionaryOracle),
			subOpt(OptionB, "Over-deliver something flawless — the work itself repairs the trust.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "Get in a room with them — I can feel what's actually wrong within minutes.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "Name the emotional rupture directly, then renegotiate the structure around it.", SubtypeUltimateAlchemist),
		}},
		{ID: 17, Text: "You're asked to speak at an industry event. How do you prepare?", Options: []Option{
			subOpt(OptionA, "Barely — the talk assembles itself on stage; that's when I'm best.", SubtypeVisionaryOracle),
			subOpt(OptionB, "Relentlessly — every slide, pause, and phrase is rehearsed until it's right.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I prepare themes, then tune the delivery to the room's energy live.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "A strong spine of structure with deliberate space for the moment.", SubtypeUltimateAlchemist),
		}},
		{ID: 18, Text: "Where does your growth actually come from these days?", Options: []Option{
			subOpt(OptionA, "Being first — I sense shifts in the market before they're visible.", SubtypeVisionaryOracle),
			subOpt(OptionB, "Reputation — people know exactly what quality they'll get from me.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "Relationships — my network sends me everything.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "Compounding — vision turned into repeatable, finished assets.", SubtypeUltimateAlchemist),
		}},
		{ID: 19, Text: "A younger founder asks for mentoring. What do you actually give them?", Options: []Option{
			subOpt(OptionA, "Permission to trust the vision they keep talking themselves out of.", SubtypeVisionaryOracle),
			subOpt(OptionB, "Craft — I show them the difference between done and right.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "Presence — most of what they need is to be truly heard first.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "A working rhythm that honours their intuition without letting it run the company.", SubtypeUltimateAlchemist),
		}},
	}
}

func subtypeBlurredEarly() []Question {
	return []Question{
		{ID: 14, Text: "You want to start a business but haven't. What's the honest reason?", Options: []Option{
			subOpt(OptionA, "I keep analysing options — every path has a flaw I can't unsee.", SubtypeOverthinker),
			subOpt(OptionB, "I've started publicly three times — each version looked great and felt hollow.", SubtypePerformer),
			subOpt(OptionC, "I make sensible, logical plans — but none of them feel like mine.", SubtypeSelfForsaker),
			subOpt(OptionD, "I wait to feel aligned, but the feeling never settles into a decision.", SubtypeSelfBetrayer),
		}},
		{ID: 15, Text: "How do you make important decisions?", Options: []Option{
			subOpt(OptionA, "I build exhaustive pro/con lists and still can't commit.", SubtypeOverthinker),
			subOpt(OptionB, "I choose whatever reads best to the people watching.", SubtypePerformer),
			subOpt(OptionC, "I pick the defensible, rational option and ignore the pull I feel elsewhere.", SubtypeSelfForsaker),
			subOpt(OptionD, "I go with the mood of the moment and regret abandoning my plan.", SubtypeSelfBetrayer),
		}},
		{ID: 16, Text: "What happens when you finally start something?", Options: []Option{
			subOpt(OptionA, "I stall at the first imperfect step — I need the whole path solved first.", SubtypeOverthinker),
			subOpt(OptionB, "I launch loudly, perform momentum, and quietly drift when attention fades.", SubtypePerformer),
			subOpt(OptionC, "I execute efficiently but feel like I'm running someone else's business.", SubtypeSelfForsaker),
			subOpt(OptionD, "I improvise everything, then feel chaos where my old structure used to be.", SubtypeSelfBetrayer),
		}},
		{ID: 17, Text: "Someone asks what kind of entrepreneur you are. What's your inner response?", Options: []Option{
			subOpt(OptionA, "Both answers are true, which is exactly the problem.", SubtypeOverthinker),
			subOpt(OptionB, "I give them whichever answer fits the room.", SubtypePerformer),
			subOpt(OptionC, "I describe the logical operator I've trained myself to be.", SubtypeSelfForsaker),
			subOpt(OptionD, "I talk about flow and freedom, though I secretly miss being organised.", SubtypeSelfBetrayer),
		}},
		{ID: 18, Text: "What does feedback do to you?", Options: []Option{
			subOpt(OptionA, "It spawns five new scenarios I now have to think through.", SubtypeOverthinker),
			subOpt(OptionB, "Public praise fuels me; private doubt stays private.", SubtypePerformer),
			subOpt(OptionC, "I process it analytically and never admit it touched me.", SubtypeSelfForsaker),
			subOpt(OptionD, "I absorb it emotionally and lose the thread of my own judgement.", SubtypeSelfBetrayer),
		}},
		{ID: 19, Text: "If the fear disappeared tomorrow, what would you build?", Options: []Option{
			subOpt(OptionA, "Honestly — I'd finally pick one of the twelve plans in my notes.", SubtypeOverthinker),
			subOpt(OptionB, "Something real, for me — not the version that photographs well.", SubtypePerformer),
			subOpt(OptionC, "Something creative I talked myself out of years ago.", SubtypeSelfForsaker),
			subOpt(OptionD, "Something structured — I'd go back to the systems I abandoned.", SubtypeSelfBetrayer),
		}},
	}
}

func subtypeBlurredDeveloped() []Question {
	return []Question{
		{ID: 14, Text: "Your business works, but something is off. What is it?", Options: []Option{
			subOpt(OptionA, "Every growth decision takes me months — I see too many branches.", SubtypeOverthinker),
			subOpt(OptionB, "Outside it looks like success; inside I'm improvising an identity.", SubtypePerformer),
			subOpt(OptionC, "It runs on discipline and logic, and it quietly drains me.", SubtypeSelfForsaker),
			subOpt(OptionD, "It runs on vibes and reinvention, and I miss having a spine to it.", SubtypeSelfBetrayer),
		}},
		{ID: 15, Text: "How do you lead your team?", Options: []Option{
			subOpt(OptionA, "Carefully — I revisit decisions so often they've learned to wait me out.", SubtypeOverthinker),
			subOpt(OptionB, "Charismatically — they follow the persona; I protect them from the doubt.", SubtypePerformer),
			subOpt(OptionC, "By the book — processes and metrics, nothing of how I actually feel.", SubtypeSelfForsaker),
			subOpt(OptionD, "Reactively — priorities shift with my state, and they've stopped planning ahead.", SubtypeSelfBetrayer),
		}},
		{ID: 16, Text: "A big strategic pivot is on the table. What happens inside you?", Options: []Option{
			subOpt(OptionA, "I model every scenario and end up defending the status quo by exhaustion.", SubtypeOverthinker),
			subOpt(OptionB, "I announce it boldly before I've actually decided — now I have to.", SubtypePerformer),
			subOpt(OptionC, "I build the rational case and suppress the instinct screaming otherwise.", SubtypeSelfForsaker),
			subOpt(OptionD, "I chase the exciting version and dismantle structures I'll wish I'd kept.", SubtypeSelfBetrayer),
		}},
		{ID: 17, Text: "What do trusted peers say about you?", Options: []Option{
			subOpt(OptionA, "That I'm the smartest person in the room who ships the least.", SubtypeOverthinker),
			subOpt(OptionB, "That they're not sure which version of me is the real one.", SubtypePerformer),
			subOpt(OptionC, "That I'm impressive, relentless — and impossible to actually know.", SubtypeSelfForsaker),
			subOpt(OptionD, "That I was sharper before I became this 'go with the flow' person.", SubtypeSelfBetrayer),
		}},
		{ID: 18, Text: "When do you feel most like yourself?", Options: []Option{
			subOpt(OptionA, "In research mode — before any commitment closes the other doors.", SubtypeOverthinker),
			subOpt(OptionB, "On stage, in the pitch, mid-performance — and rarely after.", SubtypePerformer),
			subOpt(OptionC, "In rare unguarded moments the business never gets to see.", SubtypeSelfForsaker),
			subOpt(OptionD, "In bursts of feeling — though I can't build anything lasting on them.", SubtypeSelfBetrayer),
		}},
		{ID: 19, Text: "What would the next level of your business actually require?", Options: []Option{
			subOpt(OptionA, "Committing to one operating mode and letting the other analyses die.", SubtypeOverthinker),
			subOpt(OptionB, "Dropping the performance and building from who I am off-stage.", SubtypePerformer),
			subOpt(OptionC, "Letting feeling back into decisions I've ruled by logic for years.", SubtypeSelfForsaker),
			subOpt(OptionD, "Rebuilding the frameworks I abandoned to feel free.", SubtypeSelfBetrayer),
		}},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 5: Validation (Q20-Q23)
// Each option maps to a subtype; answers are tagged by how close that subtype
// is to the classified one. Tags annotate confidence and change nothing.
// ─────────────────────────────────────────────────────────────────────────────

func validationAlchemistBank() []Question {
	return []Question{
		{ID: 20, Text: "You're given a blank room and asked to design it however you like. What happens first?", Options: []Option{
			subOpt(OptionA, "I get excited and start moving things around to see what feels right.", SubtypeVisionaryOracle),
			subOpt(OptionB, "I sketch it out first, then arrange everything to match my vision perfectly.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I tune into the energy of the space and let that guide where things go.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I think about the purpose of the room first, then design around that function.", SubtypeUltimateAlchemist),
		}},
		{ID: 21, Text: "Think back to school homework. How did you usually approach it?", Options: []Option{
			subOpt(OptionA, "I did it in bursts — either all at once or not at all.", SubtypeVisionaryOracle),
			subOpt(OptionB, "I planned it out carefully and worked through it step by step.", SubtypeMagneticPerfectionist),
			subOpt(OptionC, "I needed the right mood or environment before I could focus.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I found ways to make it interesting or connected it to something I cared about.", SubtypeUltimateAlchemist),
		}},
		{ID: 22, Text: "As a child, how did you organize your room or personal space?", Options: []Option{
			subOpt(OptionA, "I did it in one big emotional burst — the chaos would build until I had to act.", SubtypeVisionaryOracle),
			subOpt(OptionB, "I made a plan or system first, then tackled it piece by piece.", SubtypeUltimateAlchemist),
			subOpt(OptionC, "I felt overwhelmed unless the mood or energy felt right.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I cleaned while imagining how I wanted it to look when done — I needed to see it first.", SubtypeMagneticPerfectionist),
		}},
		{ID: 23, Text: "You're learning a new skill. Which learning pattern is most natural for you?", Options: []Option{
			subOpt(OptionA, "I research first, then repeat steps until it feels mastered.", SubtypeMagneticPerfectionist),
			subOpt(OptionB, "I learn by doing — I just start and fix mistakes as I go.", SubtypeVisionaryOracle),
			subOpt(OptionC, "I learn when I feel connected to what I'm doing — if the energy's off, I can't focus.", SubtypeEnergeticEmpath),
			subOpt(OptionD, "I see the end result in my head first, then I try to recreate it immediately.", SubtypeUltimateAlchemist),
		}},
	}
}

func validationArchitectBank() []Question {
	return []Question{
		{ID: 20, Text: "You're given a blank room and asked to design it however you like. What happens first?", Options: []Option{
			subOpt(OptionA, "I measure the space and draw a layout before moving anything.", SubtypeInternalAnalyzer),
			subOpt(OptionB, "I define what the room is for, then design backwards from that.", SubtypeMasterStrategist),
			subOpt(OptionC, "I start assembling the essentials and adjust as the room takes shape.", SubtypeSystemisedBuilder),
			subOpt(OptionD, "I settle on the simplest arrangement that works and stop there.", SubtypeUltimateStrategist),
		}},
		{ID: 21, Text: "Think back to school homework. How did you usually approach it?", Options: []Option{
			subOpt(OptionA, "I worked through it methodically the same way every time.", SubtypeSystemisedBuilder),
			subOpt(OptionB, "I figured out what the teacher actually wanted, then did exactly that.", SubtypeMasterStrategist),
			subOpt(OptionC, "I double-checked everything — losing marks to carelessness was unacceptable.", SubtypeInternalAnalyzer),
			subOpt(OptionD, "I found the shortest route to a top grade and took it.", SubtypeUltimateStrategist),
		}},
		{ID: 22, Text: "As a child, how did you organize your room or personal space?", Options: []Option{
			subOpt(OptionA, "Everything had a place; I built the system once and maintained it.", SubtypeSystemisedBuilder),
			subOpt(OptionB, "I reorganised periodically when I'd designed a better layout in my head.", SubtypeInternalAnalyzer),
			subOpt(OptionC, "Tidy enough to function — I didn't waste effort past that point.", SubtypeUltimateStrategist),
			subOpt(OptionD, "I arranged it around whatever project mattered most at the time.", SubtypeMasterStrategist),
		}},
		{ID: 23, Text: "You're learning a new skill. Which learning pattern is most natural for you?", Options: []Option{
			subOpt(OptionA, "I study the theory first, then practise against it.", SubtypeInternalAnalyzer),
			subOpt(OptionB, "I follow a structured course from start to finish.", SubtypeSystemisedBuilder),
			subOpt(OptionC, "I work out which 20% of the skill delivers 80% of the value.", SubtypeMasterStrategist),
			subOpt(OptionD, "I learn exactly as much as the goal requires and no more.", SubtypeUltimateStrategist),
		}},
	}
}

func validationBlurredBank() []Question {
	return []Question{
		{ID: 20, Text: "You're given a blank room and asked to design it however you like. What happens first?", Options: []Option{
			subOpt(OptionA, "I research layouts for days and never quite commit to one.", SubtypeOverthinker),
			subOpt(OptionB, "I design it for how it will look to visitors.", SubtypePerformer),
			subOpt(OptionC, "I produce a sensible, functional plan and feel nothing about it.", SubtypeSelfForsaker),
			subOpt(OptionD, "I rearrange on impulse and live with the churn.", SubtypeSelfBetrayer),
		}},
		{ID: 21, Text: "Think back to school homework. How did you usually approach it?", Options: []Option{
			subOpt(OptionA, "I spent longer deciding how to start than actually doing it.", SubtypeOverthinker),
			subOpt(OptionB, "I did best on anything that would be seen or graded publicly.", SubtypePerformer),
			subOpt(OptionC, "I did it properly and joylessly, like a small job.", SubtypeSelfForsaker),
			subOpt(OptionD, "I had systems in early years, then abandoned them and winged it.", SubtypeSelfBetrayer),
		}},
		{ID: 22, Text: "As a child, how did you organize your room or personal space?", Options: []Option{
			subOpt(OptionA, "I planned elaborate reorganisations that rarely got finished.", SubtypeOverthinker),
			subOpt(OptionB, "It was presentable when guests came; chaos otherwise.", SubtypePerformer),
			subOpt(OptionC, "Precisely ordered — it was the one thing I could control.", SubtypeSelfForsaker),
			subOpt(OptionD, "It cycled between strict order and total collapse.", SubtypeSelfBetrayer),
		}},
		{ID: 23, Text: "You're learning a new skill. Which learning pattern is most natural for you?", Options: []Option{
			subOpt(OptionA, "I compare methods endlessly before practising any of them.", SubtypeOverthinker),
			subOpt(OptionB, "I progress fastest when someone is watching.", SubtypePerformer),
			subOpt(OptionC, "I grind through drills even when the joy has gone.", SubtypeSelfForsaker),
			subOpt(OptionD, "I start strong with structure, then drift the moment it feels stale.", SubtypeSelfBetrayer),
		}},
	}
}
