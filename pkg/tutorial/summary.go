package tutorial

// SummaryFilename is the fixed name of the exported recap.
const SummaryFilename = "weave-evaluations-summary.md"

// SummaryMediaType is the media type of the exported recap.
const SummaryMediaType = "text/markdown"

// Artifact is a file offered to the user.
type Artifact struct {
	Filename  string
	MediaType string
	Content   []byte
}

// DownloadSummary returns the tutorial recap. The content is fixed and does
// not depend on any viewer position.
func DownloadSummary() Artifact {
	return Artifact{
		Filename:  SummaryFilename,
		MediaType: SummaryMediaType,
		Content:   []byte(summaryMarkdown),
	}
}

const summaryMarkdown = `
# Weave Evaluations Tutorial Summary

## Key Concepts
- **Models**: Your AI system (OpenUIModel in our example)
- **Datasets**: Test cases for evaluation (CSV → Weave Dataset)
- **Scorers**: Functions that assess quality (multi-dimensional scoring)

## Core Workflow
1. Create dataset: CSV → weave.Dataset → weave.publish()
2. Build model: Inherit from Model, implement predict()
3. Define scorers: Functions that return quality scores
4. Run evaluation: Evaluation(dataset, model, scorers)

## OpenUI Example Structure
` + "```" + `python
# Model generates HTML from prompts
class OpenUIModel(PromptModel):
    async def predict(self, prompt: str) -> dict:
        # Generate HTML, parse output, optionally screenshot
        
# Scorer evaluates across 4 dimensions  
class OpenUIScoringModel(Model):
    async def predict(self, prompt: str, prediction: dict) -> dict:
        # Score relevance, polish, media, contrast (1-4 scale)
` + "```" + `

## Running Evaluations
` + "```" + `bash
# Basic (no screenshots)
python -m openui.eval.evaluate_weave

# With screenshots  
python -m openui.eval.evaluate_weave --screenshots

# Different model
python -m openui.eval.evaluate_weave gpt-4-turbo
` + "```" + `

## Best Practices
- Start simple, iterate fast
- Automate early in development
- Use multi-dimensional scoring
- Monitor for regressions
- Version your datasets

## Advanced Features
- Prompt optimization (HOGWILD=1)
- A/B testing multiple models
- Continuous evaluation
- Custom metrics
- Production monitoring

## Resources
- OpenUI GitHub: https://github.com/wandb/openui
- Weave Docs: https://weave-docs.wandb.ai/
- W&B Community: https://wandb.ai/community
`
