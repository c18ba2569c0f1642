package feedback

const docs = "https://docs.retroachievements.org/"

// IssueType is an entry of the issue catalog.
type IssueType struct {
	Name        string   `json:"name"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	References  []string `json:"references,omitempty"`
}

func newType(name string, sev Severity, desc string, refs ...string) *IssueType {
	t := &IssueType{Name: name, Severity: sev, Description: desc, References: refs}
	catalog = append(catalog, t)
	return t
}

var catalog []*IssueType

// Catalog returns every issue type in declaration order.
func Catalog() []*IssueType {
	return append([]*IssueType(nil), catalog...)
}

// Writing policy.
var (
	TitleCase = newType("title-case", SeverityWarn,
		"Titles should be written in title case according to the Chicago Manual of Style.",
		"https://en.wikipedia.org/wiki/Title_case#Chicago_Manual_of_Style")
	TitlePunctuation = newType("title-punctuation", SeverityWarn,
		"Achievement titles are not full sentences, and should not end with punctuation (exception: ?, !, or ellipses).",
		docs+"guidelines/content/writing-policy.html#punctuation")
	DescSentenceCase = newType("desc-sentence-case", SeverityInfo,
		"Achievement descriptions should not be in title case, but rather sentence case.",
		docs+"guidelines/content/writing-policy.html#capitalization-1")
	DescPunctConsistency = newType("desc-punct-consistency", SeverityInfo,
		"Achievement descriptions should be consistent about whether or not they end with punctuation.",
		docs+"guidelines/content/writing-policy.html#punctuation-1")
	DescBrackets = newType("desc-brackets", SeverityInfo,
		"Achievement descriptions should avoid brackets where possible.",
		docs+"guidelines/content/writing-policy.html#brackets-parentheses")
	DescSymbols = newType("desc-symbols", SeverityInfo,
		"Achievement descriptions are discouraged from using symbols to describe conditions.",
		docs+"guidelines/content/writing-policy.html#symbols-and-emojis")
	DescQuotes = newType("desc-quotes", SeverityInfo,
		"Achievement descriptions should only use double quotation marks, except for quotes inside quotes.",
		docs+"guidelines/content/writing-policy.html#symbols-and-emojis")
	NumFormat = newType("num-format", SeverityInfo,
		"Numbers should be formatted to conform to English standards (period for decimal separation, commas for grouping).",
		docs+"guidelines/content/writing-policy.html#number-formatting")
	NoEmoji = newType("no-emoji", SeverityWarn,
		"Achievement titles and descriptions may not contain emoji.",
		docs+"guidelines/content/writing-policy.html#emojis",
		docs+"guidelines/content/writing-policy.html#symbols-and-emojis")
	SpecialChars = newType("special-chars", SeverityWarn,
		"Avoid using accented/special characters, as they can have rendering issues.",
		docs+"guidelines/content/naming-conventions.html",
		docs+"developer-docs/tips-and-tricks.html#naming-convention-tips")
	ForeignChars = newType("foreign-chars", SeverityInfo,
		"Achievement titles and descriptions should be written in English and should avoid special characters.",
		docs+"guidelines/content/writing-policy.html#language")
)

// Set design.
var (
	NoProgression = newType("no-progression", SeverityInfo,
		"Set lacks progression achievements (win conditions found). This might be unavoidable, depending on the game, but progression achievements should be added when possible.",
		docs+"guidelines/content/progression-and-win-condition-guidelines.html#progression-conditions")
	NoTyping = newType("no-typing", SeverityWarn,
		"Set lacks progression and win condition typing.",
		docs+"guidelines/content/progression-and-win-condition-guidelines.html#progression-conditions",
		docs+"guidelines/content/progression-and-win-condition-guidelines.html#win-conditions")
	AchievementDifficulty = newType("achievement-difficulty", SeverityInfo,
		"A good spread of achievement difficulties is important.",
		docs+"developer-docs/difficulty-scale-and-balance.html")
	ProgressionOnly = newType("progression-only", SeverityWarn,
		"Progression-only sets should be avoided. Consider adding custom challenge achievements to improve it.",
		"https://retroachievements.org/game/5442")
	DuplicateTitles = newType("duplicate-titles", SeverityWarn,
		"Assets should all have unique titles to distinguish them from one another.")
	DuplicateDescriptions = newType("duplicate-descriptions", SeverityInfo,
		"Assets should have unique descriptions. Duplicate descriptions likely indicate redundant assets.")
)

// Code notes.
var (
	NoteEmpty = newType("note-empty", SeverityWarn, "Empty code note.")
	NoteNoSize = newType("note-no-size", SeverityWarn,
		"Code notes must have size information.",
		docs+"guidelines/content/code-notes.html#specifying-memory-addresses-size")
	NoteEnumHex = newType("note-enum-hex", SeverityWarn,
		`Enumerated hex values in code notes should be prefixed with "0x" to avoid being misinterpreted as decimal values.`,
		docs+"guidelines/content/code-notes.html#adding-values-and-labels")
	NoteEnumTooLarge = newType("note-enum-too-large", SeverityWarn,
		"Enumerated values too large for code note size information.",
		docs+"guidelines/content/code-notes.html#adding-values-and-labels")
	BadRegionNote = newType("bad-region-note", SeverityWarn,
		"Some memory regions are unsafe, redundant, or should not otherwise be used.",
		docs+"developer-docs/console-specific-tips.html")
	UnalignedNote = newType("unaligned-note", SeverityInfo, "16- and 32-bit data is often word-aligned.")
)

// Rich presence.
var (
	NoDynamicRP = newType("no-dynamic-rp", SeverityWarn,
		"Dynamic rich presence is required for all sets.",
		docs+"developer-docs/rich-presence.html#introduction")
	NoConditionalDisplay = newType("no-conditional-display", SeverityInfo,
		"The use of conditional displays can improve the quality of rich presence by showing specific information based on the game mode.",
		docs+"developer-docs/rich-presence.html#conditional-display-strings")
	MissingNoteRP = newType("missing-note-rp", SeverityWarn,
		"All addresses used in rich presence require a code note.")
)

// Logic.
var (
	BadChain = newType("bad-chain", SeverityError,
		"The last requirement of a group cannot have a chaining flag.")
	MissingNote = newType("missing-note", SeverityWarn,
		"All addresses used in achievement logic require a code note.",
		docs+"guidelines/content/code-notes.html")
	OneCondition = newType("one-condition", SeverityWarn,
		"One-condition achievements are dangerous and should be avoided.",
		docs+"developer-docs/tips-and-tricks.html#achievement-creation-tips")
	MissingDelta = newType("missing-delta", SeverityWarn,
		"Achievements must contain a Delta to isolate the specific moment that an achievement should trigger.",
		docs+"developer-docs/delta-values.html",
		docs+"developer-docs/why-delta.html")
	ImproperDelta = newType("improper-delta", SeverityInfo,
		"Proper use of Delta can help identify the precise moment that an achievement should trigger.",
		docs+"developer-docs/delta-values.html")
	BadPrior = newType("bad-prior", SeverityWarn,
		"Questionable use of Prior. See below for more information.",
		docs+"developer-docs/prior-values.html")
	CommonAlt = newType("common-alt", SeverityInfo,
		"If every alt group contains the same bit of logic in common, it can be refactored back into the Core group.")
	StaleAddAddress = newType("stale-addaddress", SeverityInfo,
		"Stale references with AddAddress can be dangerous. Use caution when reading a pointer from the previous frame (AddAddress + Delta).",
		docs+"developer-docs/flags/addaddress.html#using-delta-with-chained-pointers")
	NegativeOffset = newType("negative-offset", SeverityWarn,
		"Negative pointer offsets are wrong in the vast majority of cases and are incompatible with the way pointers actually work.",
		docs+"developer-docs/flags/addaddress.html#calculating-your-offset")
	BadRegionLogic = newType("bad-region-logic", SeverityError,
		"Some memory regions are unsafe, redundant, or should not otherwise be used for achievement logic.",
		docs+"developer-docs/console-specific-tips.html")
	TypeMismatch = newType("type-mismatch", SeverityInfo,
		"Memory accessor doesn't match size listed in code note.",
		docs+"developer-docs/memory-inspector.html",
		docs+"guidelines/content/code-notes.html")
	MissingEnumeration = newType("missing-enumeration", SeverityWarn,
		"A value was used that doesn't match any of the enumerated values in the code note.",
		docs+"guidelines/content/code-notes.html#adding-values-and-labels")
	SourceModMeasured = newType("source-mod-measured", SeverityError,
		"Placing a source modification on a Measured requirement can cause faulty values in older versions of RetroArch (pre-1.10.1).")
	PauseLockNoReset = newType("pauselock-no-reset", SeverityWarn,
		"PauseLocks require a reset, either via ResetNextIf, or a ResetIf in another group.",
		docs+"developer-docs/flags/pauseif.html#pauseif-with-hit-counts")
	HitNoReset = newType("hit-no-reset", SeverityWarn,
		"Hit counts require a reset, either via ResetIf or ResetNextIf.",
		docs+"developer-docs/hit-counts.html")
	UselessAndNext = newType("useless-andnext", SeverityWarn,
		"Combining requirements with AND is the default behavior. Useless AndNext flags should be removed.",
		docs+"developer-docs/flags/andnext-ornext.html")
	UselessAlt = newType("useless-alt", SeverityError,
		"A Reset-only Alt group is considered satisfied, making all other Alt groups useless.")
	UselessReset = newType("useless-reset", SeverityWarn,
		"ResetIf should only be used with achievements that have hitcounts.",
		docs+"developer-docs/flags/resetif.html")
	UselessResetNextIf = newType("useless-resetnextif", SeverityWarn,
		"ResetNextIf should only be used with requirements that have hitcounts, and must be placed immediately before the requirement with the hits.",
		docs+"developer-docs/flags/resetnextif.html")
	UselessPause = newType("useless-pause", SeverityWarn,
		"PauseIf should only be used with requirements that have hitcounts.",
		docs+"developer-docs/flags/pauseif.html")
	PausingMeasured = newType("pausing-measured", SeverityPass,
		"PauseIf should only be used with requirements that have hitcounts, unless being used to freeze updates to a Measured requirement.",
		docs+"developer-docs/flags/measured.html#measured")
	ResetHitcountOne = newType("reset-hitcount-one", SeverityInfo,
		"A ResetIf or ResetNextIf with a hitcount of 1 does not require a hitcount. The hitcount can be safely removed.",
		docs+"developer-docs/flags/resetif.html")
	UselessAddSub = newType("useless-addsub", SeverityWarn,
		"Using AddSource and SubSource is better supported in old emulators, and should be preferred where possible.",
		docs+"developer-docs/flags/addsource.html",
		docs+"developer-docs/flags/subsource.html")
	Unsatisfiable = newType("unsatisfiable", SeverityError,
		"Requirement can never be satisfied (always-false).")
	Unnecessary = newType("unnecessary", SeverityInfo,
		"Requirement will always be satisfied (always-true).")
)
