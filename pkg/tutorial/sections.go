package tutorial

// Snippet keys. The set is independent of section IDs: some sections offer
// two examples and the conclusion offers a reusable template.
const (
	SnippetSetup            = "setup"
	SnippetConcepts         = "concepts"
	SnippetDatasets         = "datasets"
	SnippetModels           = "models"
	SnippetScoring          = "scoring"
	SnippetRunning          = "running"
	SnippetAdvanced         = "advanced"
	SnippetDatasetStructure = "dataset-structure"
	SnippetModelDeepDive    = "model-deep-dive"
	SnippetScoringDemo      = "scoring-demo"
	SnippetRunSimulation    = "run-simulation"
	SnippetAdvancedDemo     = "advanced-demo"
	SnippetTemplate         = "template"
)

// External resources linked from the conclusion page.
const (
	LinkOpenUIRepo = "https://github.com/wandb/openui"
	LinkWeaveDocs  = "https://weave-docs.wandb.ai/"
	LinkCommunity  = "https://wandb.ai/community"
)

// DefaultSections returns the built-in tutorial content in navigation order.
func DefaultSections() []Section {
	return []Section{
		{
			ID:      "intro",
			Title:   "🌟 Introduction to Weave Evaluations",
			Content: introContent,
		},
		{
			ID:      "setup",
			Title:   "⚙️ Environment Setup",
			Content: setupContent,
			Actions: []Action{
				snippet("🔍 Show Setup Verification Code", SnippetSetup),
			},
		},
		{
			ID:      "concepts",
			Title:   "🧠 Core Weave Evaluation Concepts",
			Content: conceptsContent,
			Actions: []Action{
				snippet("🧪 See OpenUI's Complete Implementation", SnippetConcepts),
			},
		},
		{
			ID:      "datasets",
			Title:   "📊 Creating and Managing Datasets",
			Content: datasetsContent,
			Actions: []Action{
				snippet("📊 Explore Dataset Structure", SnippetDatasetStructure),
				snippet("🔧 Show Publishing Script", SnippetDatasets),
			},
		},
		{
			ID:      "models",
			Title:   "🤖 Building Evaluation Models",
			Content: modelsContent,
			Actions: []Action{
				snippet("🤖 Explore Model Code", SnippetModelDeepDive),
				snippet("🔧 Run Model Independently", SnippetModels),
			},
		},
		{
			ID:      "scoring",
			Title:   "📏 Implementing Scoring Systems",
			Content: scoringContent,
			Actions: []Action{
				snippet("📊 Interactive Scoring Demo", SnippetScoringDemo),
				snippet("🔧 Build Custom Scorer", SnippetScoring),
			},
		},
		{
			ID:      "running",
			Title:   "🚀 Running Evaluations",
			Content: runningContent,
			Actions: []Action{
				snippet("🎮 Interactive Run Demo", SnippetRunSimulation),
				snippet("🔧 Debug Evaluation Issues", SnippetRunning),
			},
		},
		{
			ID:      "advanced",
			Title:   "🚀 Advanced Features",
			Content: advancedContent,
			Actions: []Action{
				snippet("🚀 Advanced Features Demo", SnippetAdvancedDemo),
				snippet("🔧 Build Production Pipeline", SnippetAdvanced),
			},
		},
		{
			ID:      "conclusion",
			Title:   "🎉 Conclusion & Next Steps",
			Content: conclusionContent,
			Actions: []Action{
				{Kind: ActionLink, Label: "GitHub Repo", Target: LinkOpenUIRepo},
				{Kind: ActionLink, Label: "Weave Docs", Target: LinkWeaveDocs},
				snippet("Get Template", SnippetTemplate),
				{Kind: ActionLink, Label: "W&B Community", Target: LinkCommunity},
				{Kind: ActionRestart, Label: "🔄 Restart Tutorial"},
				{Kind: ActionDownload, Label: "📄 Download Summary"},
			},
		},
	}
}

// DefaultStore returns a Store over DefaultSections.
func DefaultStore() *Store {
	return MustNewStore(DefaultSections())
}

// Links returns every external link action in navigation order.
func (s *Store) Links() []Action {
	var links []Action
	for _, sec := range s.sections {
		for _, a := range sec.Actions {
			if a.Kind == ActionLink {
				links = append(links, a)
			}
		}
	}
	return links
}

func snippet(label, key string) Action {
	return Action{Kind: ActionSnippet, Label: label, Target: key}
}
