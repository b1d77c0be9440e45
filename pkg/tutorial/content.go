package tutorial

// Section bodies are HTML fragments rendered as-is by the display layer.

// introContent is the body of the "intro" section.
const introContent = `<p>Welcome to <strong>Weave Evaluations</strong>! This guide teaches you to build robust evaluation systems for AI applications using the <strong>OpenUI project</strong> as a comprehensive real-world example.</p>

            <div class="concept-card">
                <h3>What is Weave?</h3>
                <p>Weave is W&B's toolkit for developing AI-powered applications with rigorous evaluation and observability. Based on the official documentation, Weave provides:</p>
                <ul>
                    <li><strong>Evaluation Framework</strong> - Run systematic evaluations with datasets and scorers</li>
                    <li><strong>Model Tracking</strong> - Track model performance across experiments</li>
                    <li><strong>Flexible Scoring</strong> - Custom scoring functions for domain-specific metrics</li>
                    <li><strong>End-to-end Tracing</strong> - Debug complex AI workflows with full observability</li>
                </ul>
            </div>

            <h3>🎯 Core Evaluation Components</h3>
            <p>Every Weave evaluation consists of three fundamental components working together:</p>

            <div class="feature-grid">
                <div class="feature-card">
                    <h4>📊 Dataset</h4>
                    <p>Collection of examples to evaluate against</p>
                    <pre><code class="language-python"># OpenUI dataset example
dataset = [
    {"prompt": "Create a button", "expected": "Button"},
    {"prompt": "Make a card", "expected": "Card"}
]</code></pre>
                </div>
                <div class="feature-card">
                    <h4>🤖 Model</h4>
                    <p>Your AI application being evaluated</p>
                    <pre><code class="language-python"># OpenUI model
class OpenUIModel(Model):
    @weave.op()
    async def predict(self, prompt: str):
        # Generate HTML from prompt
        return {"html": "...", "name": "..."}
</code></pre>
                </div>
                <div class="feature-card">
                    <h4>📏 Scorers</h4>
                    <p>Functions that assess output quality</p>
                    <pre><code class="language-python"># OpenUI scorer
@weave.op()
async def quality_score(prompt, prediction):
    return {"relevance": 4, "polish": 3}
</code></pre>
                </div>
                <div class="feature-card">
                    <h4>🔄 Evaluation</h4>
                    <p>Orchestrates the entire evaluation process</p>
                    <pre><code class="language-python"># Complete evaluation
evaluation = Evaluation(
    dataset=dataset, 
    scorers=[quality_score]
)
await evaluation.evaluate(model)
</code></pre>
                </div>
            </div>

            <h3>🎨 Why OpenUI as Example?</h3>
            <div class="example-box">
                <p>OpenUI demonstrates advanced evaluation patterns that work for many AI applications:</p>
                <ul>
                    <li><strong>Complex Output Generation</strong> - HTML + CSS with structured metadata</li>
                    <li><strong>Multi-dimensional Quality</strong> - Relevance, polish, media responsiveness, contrast</li>
                    <li><strong>Visual Validation</strong> - Optional screenshot-based evaluation</li>
                    <li><strong>Production Ready</strong> - Error handling, retries, and monitoring</li>
                    <li><strong>Flexible Configuration</strong> - Multiple models, temperature settings, screenshot modes</li>
                </ul>
            </div>

            <h3>🚀 Quick Preview</h3>
            <p>Here's what a complete OpenUI evaluation looks like:</p>

            <pre><code class="language-python"># 1. Initialize Weave
weave.init("openui-dev")

# 2. Setup evaluation
evaluation = Evaluation(
    dataset=weave.ref("eval:v0").get(),
    scorers=[scores]  # Multi-dimensional AI scoring
)

# 3. Run evaluation
await evaluation.evaluate(
    OpenUIModel(
        prompt_template=SYSTEM_PROMPT,
        take_screenshot=False  # Fast text-only mode
    )
)

# Results: {'scores': {'relevance': {'mean': 4.0}, 'polish': {'mean': 3.3}, ...}}</code></pre>

            <div class="warning-box">
                <h4>💡 Learning Approach</h4>
                <p>We'll start with official Weave concepts, then see them implemented in OpenUI's production-ready evaluation system. This gives you both theoretical understanding and practical patterns you can adapt.</p>
            </div>

            <p>Ready to build evaluation systems that scale? Let's start! 🎉</p>`

// setupContent is the body of the "setup" section.
const setupContent = `<p>Before building evaluations, we need to set up our environment with the necessary dependencies and configuration.</p>

            <h3>📦 Installation</h3>
            <p>The OpenUI project uses modern Python packaging with <code>uv</code>:</p>

            <pre><code class="language-bash"># Install with evaluation dependencies
uv sync --frozen --extra eval

# Alternative with pip
pip install -e ".[eval]"</code></pre>

            <div class="concept-card">
                <h3>🔧 Key Dependencies</h3>
                <p>Our evaluation system requires several packages:</p>
                <ul>
                    <li><strong>weave</strong> - Core evaluation framework</li>
                    <li><strong>openai</strong> - LLM API integration</li>
                    <li><strong>playwright</strong> - Browser automation for screenshots</li>
                    <li><strong>pandas</strong> - Data manipulation</li>
                    <li><strong>mistletoe</strong> - Markdown parsing</li>
                    <li><strong>pillow</strong> - Image processing</li>
                </ul>
            </div>

            <h3>🌍 Environment Variables</h3>
            <p>Create a <code>.env</code> file with your API keys:</p>

            <pre><code class="language-bash"># Weights & Biases / Weave Configuration
WANDB_API_KEY=your_wandb_api_key
WANDB_ENTITY=your_wandb_entity
WANDB_PROJECT=your_project_name

# LLM API Keys
OPENAI_API_KEY=your_openai_key
# ANTHROPIC_API_KEY=your_anthropic_key (optional)
# GROQ_API_KEY=your_groq_key (optional)</code></pre>

            <h3>🎭 Browser Setup for Screenshots</h3>
            <p>If you want screenshot functionality:</p>

            <pre><code class="language-bash"># Install Playwright browsers
playwright install</code></pre>

            <div class="warning-box">
                <h4>⚠️ Optional Dependencies</h4>
                <p>Screenshots are optional! The evaluation system works perfectly without them, using text-only analysis. This makes development faster and reduces infrastructure requirements.</p>
            </div>

            <h3>🚀 Quick Test</h3>
            <p>Verify your setup by running a simple evaluation:</p>

            <pre><code class="language-bash"># Start the dev server
python -m openui --dev 2>&1 | tee server.log

# In another terminal, run evaluation
python -m openui.eval.evaluate_weave</code></pre>`

// conceptsContent is the body of the "concepts" section.
const conceptsContent = `<p>Based on the official Weave documentation, let's understand how evaluations work and see them implemented in OpenUI.</p>

            <div class="concept-card">
                <h3>🎯 Official Weave Evaluation Pattern</h3>
                <p>According to Weave docs, every evaluation follows this structure:</p>
                <pre><code class="language-python"># Standard Weave evaluation pattern
evaluation = weave.Evaluation(
    dataset=examples,
    scorers=[scoring_functions]
)
await evaluation.evaluate(model_or_function)</code></pre>
            </div>

            <h3>📊 Datasets: Your Test Cases</h3>
            <p>Weave datasets are collections of examples. OpenUI's dataset structure:</p>

            <pre><code class="language-python"># OpenUI dataset follows Weave patterns
examples = [
    {"prompt": "Create a simple button component", "name": "Button", "emoji": "🔘"},
    {"prompt": "Make a card component with header", "name": "Card", "emoji": "🃏"}
]

# Published to Weave for versioning
dataset = weave.Dataset(name="eval", rows=examples)
weave.publish(dataset)</code></pre>

            <h3>🤖 Models: Two Implementation Approaches</h3>
            <p>Weave supports both <code>Model</code> classes and <code>@weave.op</code> functions:</p>

            <div class="feature-grid">
                <div class="feature-card">
                    <h4>📋 Model Class (OpenUI uses this)</h4>
                    <pre><code class="language-python">class OpenUIModel(Model):
    @weave.op()
    async def predict(self, prompt: str):
        # Your AI logic here
        return {"html": "...", "name": "..."}</code></pre>
                </div>
                <div class="feature-card">
                    <h4>⚡ Function Approach</h4>
                    <pre><code class="language-python">@weave.op()
def function_to_evaluate(prompt: str):
    # Simpler for basic cases
    return {'generated_text': 'result'}</code></pre>
                </div>
            </div>

            <h3>📏 Scorers: The Heart of Evaluation</h3>
            <p>Weave scorers are decorated functions that assess quality. OpenUI's scorer:</p>

            <pre><code class="language-python"># OpenUI's AI-powered scorer (follows Weave patterns)
@weave.op()
async def scores(prompt: str, model_output: dict) -> dict:
    # Uses GPT-4 Vision to score across 4 dimensions
    return await scoring_model.predict(prompt, model_output)

# Weave automatically aggregates scores:
# {'scores': {'relevance': {'mean': 4.0}, 'polish': {'mean': 3.3}, ...}}</code></pre>

            <h3>🔄 Complete Evaluation Workflow</h3>
            <p>Here's how OpenUI implements the official Weave pattern:</p>

            <pre><code class="language-python"># 1. Initialize Weave (required)
weave.init("openui-dev")

# 2. Load dataset (Weave's dataset versioning)
dataset = weave.ref("eval:v0").get()

# 3. Create model instance
model = OpenUIModel(
    prompt_template=SYSTEM_PROMPT,
    model_name="gpt-3.5-turbo",
    take_screenshot=False
)

# 4. Setup evaluation with scorers
evaluation = Evaluation(
    dataset=dataset,
    scorers=[scores]  # Custom AI-powered scoring
)

# 5. Run evaluation (Weave handles the orchestration)
results = await evaluation.evaluate(model)
# Results: {'scores': {...}, 'model_latency': {...}}</code></pre>

            <div class="example-box">
                <h4>🎯 Why This Pattern Works</h4>
                <p>Weave's design provides:</p>
                <ul>
                    <li><strong>Automatic tracking</strong> - All calls logged with trace URLs</li>
                    <li><strong>Score aggregation</strong> - Mean, count automatically calculated</li>
                    <li><strong>Async support</strong> - Handles LLM calls efficiently</li>
                    <li><strong>Versioning</strong> - Datasets and models are versioned</li>
                    <li><strong>UI integration</strong> - Results viewable in W&B interface</li>
                </ul>
            </div>`

// datasetsContent is the body of the "datasets" section.
const datasetsContent = `<p>Datasets are the foundation of good evaluations. Let's learn how to create, manage, and version them effectively.</p>

            <h3>📝 Dataset Creation</h3>
            <p>OpenUI datasets are simple CSV files that get published to Weave:</p>

            <pre><code class="language-csv">prompt,name,emoji
"Create a simple button component","Button","🔘"
"Make a card component with header and content","Card","🃏"
"Build a navigation bar","Navigation","🧭"</code></pre>

            <div class="concept-card">
                <h3>🏗️ Dataset Publishing Workflow</h3>
                <ol class="step-list">
                    <li>Create CSV file with test cases</li>
                    <li>Use Weave to publish dataset</li>
                    <li>Reference dataset in evaluations</li>
                    <li>Version and iterate as needed</li>
                </ol>
            </div>

            <h3>🚀 Publishing Code</h3>
            <p>Here's how OpenUI publishes datasets:</p>

            <pre><code class="language-python">import pandas as pd
import weave

# Initialize Weave
weave.init("openui-dev")

# Load data from CSV
data = pd.read_csv("datasets/eval.csv")
rows = data.to_dict('records')

# Publish to Weave
dataset = weave.Dataset(name="eval", rows=rows)
weave.publish(dataset)</code></pre>

            <h3>📚 Dataset Best Practices</h3>
            <div class="feature-grid">
                <div class="feature-card">
                    <h4>🎯 Representative Coverage</h4>
                    <p>Include diverse examples covering edge cases, common patterns, and failure modes</p>
                </div>
                <div class="feature-card">
                    <h4>📏 Right-sized</h4>
                    <p>Start small (10-50 examples), then grow based on model performance insights</p>
                </div>
                <div class="feature-card">
                    <h4>🔄 Version Control</h4>
                    <p>Use Weave's built-in versioning to track dataset evolution</p>
                </div>
                <div class="feature-card">
                    <h4>📊 Quality over Quantity</h4>
                    <p>Better to have fewer high-quality, well-crafted examples than many poor ones</p>
                </div>
            </div>

            <h3>🔍 Loading Published Datasets</h3>
            <p>Once published, reference datasets in your evaluations:</p>

            <pre><code class="language-python"># Load published dataset
dataset = weave.ref("eval:v0").get()

# Or reference latest version
dataset = weave.ref("eval").get()

print(f"Dataset has {len(dataset.rows)} examples")</code></pre>

            <div class="warning-box">
                <h4>⚠️ Dataset Evolution</h4>
                <p>As your model improves, your dataset should evolve too. Add challenging examples that expose current limitations, and remove examples that are no longer relevant.</p>
            </div>`

// modelsContent is the body of the "models" section.
const modelsContent = `<p>Models in Weave represent the system you're evaluating. Let's build a robust model for UI component generation.</p>

            <h3>🏗️ Model Architecture</h3>
            <p>OpenUI's model inherits from <code>PromptModel</code> and handles the complete generation pipeline:</p>

            <pre><code class="language-python">class OpenUIModel(PromptModel):
    prompt_template: str
    model_name: Optional[str] = "gpt-3.5-turbo"
    take_screenshot: Optional[bool] = False
    temp: Optional[float] = 0.3

    @weave.op()
    async def predict(self, prompt: str) -> dict:
        # Step 1: Generate with LLM
        completion = await self.actually_predict(prompt)
        result = completion.choices[0].message.content

        # Step 2: Parse structured output
        parsed = self.extract_html(result)

        # Step 3: Optional screenshot generation
        if self.take_screenshot:
            await self.screenshot(parsed["html"], name)
            parsed["desktop_img"] = f"./{self.model_dir}/{name}.png"

        return parsed</code></pre>

            <div class="concept-card">
                <h3>🎯 Key Design Principles</h3>
                <ul>
                    <li><strong>Async by default</strong> - Handle LLM API calls efficiently</li>
                    <li><strong>Configurable</strong> - Easy to switch models, temperatures, etc.</li>
                    <li><strong>Robust parsing</strong> - Handle malformed LLM outputs gracefully</li>
                    <li><strong>Optional features</strong> - Screenshots can be disabled for speed</li>
                </ul>
            </div>

            <h3>🎨 Prompt Engineering</h3>
            <p>The system prompt is crucial for consistent output:</p>

            <pre><code class="language-python">SYSTEM_PROMPT = """🎉 Greetings, TailwindCSS Virtuoso! 🌟

You've mastered the art of frontend design and TailwindCSS! 
Your mission is to transform detailed descriptions into stunning 
HTML using the versatility of TailwindCSS.

*Design Guidelines:*
- Utilize placehold.co for placeholder images
- Leverage modern ES6 JavaScript and native browser APIs
- Use these color variables for consistency:
  --background, --foreground, --primary, --secondary, etc.

Always start your response with frontmatter:
---
name: Fancy Button
emoji: 🎉
---

&lt;button class="bg-blue-500 text-white p-2 rounded-lg"&gt;Click me&lt;/button&gt;
"""</code></pre>

            <h3>🔧 LLM Client Configuration</h3>
            <p>Support multiple LLM providers with a flexible client system:</p>

            <pre><code class="language-python">@property
def client(self):
    if self.model_name.startswith("ollama/"):
        return AsyncOpenAI(base_url="http://localhost:11434/v1")
    elif self.model_name.startswith("litellm/"):
        return AsyncOpenAI(
            api_key=os.getenv("LITELLM_API_KEY"),
            base_url=os.getenv("LITELLM_BASE_URL")
        )
    else:
        return AsyncOpenAI()  # Default OpenAI</code></pre>

            <h3>📱 Screenshot Integration</h3>
            <p>Optional visual validation through automated screenshots:</p>

            <pre><code class="language-python">async def screenshot(self, html: str, name: str):
    screenshot_dir = base_dir / self.model_dir
    screenshot_dir.mkdir(exist_ok=True)

    # Generate desktop and mobile screenshots
    await gen_screenshots(name, html, screenshot_dir)</code></pre>

            <div class="example-box">
                <h4>🎯 Error Handling Strategy</h4>
                <p>The model gracefully handles various failure modes:</p>
                <ul>
                    <li><strong>Rate limits</strong> - Exponential backoff and retry</li>
                    <li><strong>Malformed output</strong> - Fallback parsing strategies</li>
                    <li><strong>Screenshot failures</strong> - Continue without visual validation</li>
                    <li><strong>Network issues</strong> - Timeout and retry logic</li>
                </ul>
            </div>`

// scoringContent is the body of the "scoring" section.
const scoringContent = `<p>Scoring systems determine how well your model performed. OpenUI uses a sophisticated multi-dimensional approach.</p>

            <h3>🎯 Multi-Dimensional Scoring</h3>
            <p>Instead of a single score, OpenUI evaluates across four key dimensions:</p>

            <div class="feature-grid">
                <div class="feature-card">
                    <h4>🎯 Relevance (1-4)</h4>
                    <p>Does the output match the user's request?</p>
                    <span class="tag">Core Quality</span>
                </div>
                <div class="feature-card">
                    <h4>✨ Polish (1-4)</h4>
                    <p>Is the design professional and well-crafted?</p>
                    <span class="tag">Visual Quality</span>
                </div>
                <div class="feature-card">
                    <h4>📱 Media Quality (1-4)</h4>
                    <p>How well does it work across devices?</p>
                    <span class="tag">Responsive</span>
                </div>
                <div class="feature-card">
                    <h4>🌓 Contrast (1-4)</h4>
                    <p>Does it handle light and dark modes?</p>
                    <span class="tag">Accessibility</span>
                </div>
            </div>

            <h3>🤖 AI-Powered Scoring</h3>
            <p>OpenUI uses GPT-4 Vision to score components based on screenshots:</p>

            <pre><code class="language-python">class OpenUIScoringModel(Model):
    @weave.op()
    async def predict(self, prompt: str, prediction: dict) -> dict:
        # Check if screenshots are available
        has_screenshots = (
            prediction.get("desktop_img") is not None and 
            prediction.get("mobile_img") is not None
        )

        if has_screenshots:
            # Score with visual analysis
            content = [
                {"type": "text", "text": user_message},
                {"type": "image_url", "image_url": {"url": desktop_screenshot}},
                {"type": "image_url", "image_url": {"url": mobile_screenshot}}
            ]
        else:
            # Score based on HTML code only
            content = [
                {"type": "text", "text": user_message},
                {"type": "text", "text": f"HTML Code:\n{prediction['html']}"}
            ]

        response = await client.chat.completions.create(
            model="gpt-4-turbo",
            messages=[{"role": "system", "content": scoring_prompt},
                     {"role": "user", "content": content}],
            response_format={"type": "json_object"}
        )</code></pre>

            <div class="concept-card">
                <h3>🎨 Scoring Prompt Design</h3>
                <p>The scoring prompt is carefully crafted to ensure consistent evaluation:</p>
                <ul>
                    <li><strong>Clear criteria</strong> - Specific definitions for each dimension</li>
                    <li><strong>Consistent scale</strong> - 1-4 rating with clear anchors</li>
                    <li><strong>JSON output</strong> - Structured format for analysis</li>
                    <li><strong>Reasoning</strong> - Explanation of scores for debugging</li>
                </ul>
            </div>

            <h3>📊 Score Aggregation</h3>
            <p>Weave automatically aggregates scores across your dataset:</p>

            <pre><code class="language-python"># Individual scorer functions
@weave.op()
async def scores(prompt: str, model_output: dict) -> dict:
    return await scoring_model.predict(prompt, model_output)

# Evaluation results
{
    'scores': {
        'relevance': {'mean': 4.0},
        'polish': {'mean': 3.33},
        'media': {'mean': 3.0},
        'contrast': {'mean': 3.0}
    },
    'model_latency': {'mean': 1.2}
}</code></pre>

            <div class="example-box">
                <h4>🔍 Example Scoring Session</h4>
                <p><strong>Prompt:</strong> "Create a simple button component"</p>
                <p><strong>Generated HTML:</strong> <code>&lt;button class="bg-primary text-primary-foreground px-4 py-2 rounded-lg"&gt;Click me&lt;/button&gt;</code></p>
                <p><strong>Scores:</strong></p>
                <ul>
                    <li>Relevance: 4 (Perfect - clearly a button)</li>
                    <li>Polish: 3 (Good styling, could be more elegant)</li>
                    <li>Media: 3 (Works on mobile, but not optimized)</li>
                    <li>Contrast: 3 (Uses theme colors, handles modes well)</li>
                </ul>
            </div>

            <h3>🛠️ Customizing Scoring</h3>
            <p>You can create custom scorers for specific needs:</p>

            <pre><code class="language-python">@weave.op()
def accessibility_score(example: dict, prediction: dict) -> float:
    html = prediction['html']
    score = 0

    # Check for alt attributes
    if 'alt=' in html:
        score += 1

    # Check for semantic elements
    if any(tag in html for tag in ['&lt;nav&gt;', '&lt;main&gt;', '&lt;button&gt;']):
        score += 1

    # Check for ARIA labels
    if 'aria-' in html:
        score += 1

    return min(score, 4)  # Cap at 4</code></pre>`

// runningContent is the body of the "running" section.
const runningContent = `<p>Now let's put it all together and run complete evaluations! OpenUI provides flexible options for different use cases.</p>

            <h3>⚡ Quick Evaluation</h3>
            <p>Run a basic evaluation without screenshots (fast for development):</p>

            <pre><code class="language-bash"># Start the dev server first
python -m openui --dev 2>&1 | tee server.log

# Run evaluation in another terminal
python -m openui.eval.evaluate_weave</code></pre>

            <h3>📸 Full Evaluation with Screenshots</h3>
            <p>Include visual validation for comprehensive assessment:</p>

            <pre><code class="language-bash"># Run with screenshot generation
python -m openui.eval.evaluate_weave --screenshots

# Or with specific model
python -m openui.eval.evaluate_weave gpt-4-turbo --screenshots</code></pre>

            <div class="concept-card">
                <h3>🎛️ Evaluation Configuration</h3>
                <p>The system supports various configuration options:</p>
                <ul>
                    <li><strong>Model Selection</strong> - OpenAI, Anthropic, local models</li>
                    <li><strong>Screenshot Mode</strong> - Enable/disable visual validation</li>
                    <li><strong>Temperature</strong> - Control creativity vs consistency</li>
                    <li><strong>Dataset Version</strong> - Pin to specific dataset versions</li>
                </ul>
            </div>

            <h3>📊 Understanding Results</h3>
            <p>Evaluation results provide detailed insights:</p>

            <pre><code class="language-json">{
    "scores": {
        "relevance": {"mean": 4.0, "count": 3},
        "polish": {"mean": 3.33, "count": 3}, 
        "media": {"mean": 3.0, "count": 3},
        "contrast": {"mean": 3.0, "count": 3}
    },
    "model_latency": {"mean": 1.2},
    "total_examples": 3,
    "success_rate": 1.0
}</code></pre>

            <h3>🔍 Debugging Evaluations</h3>
            <p>When evaluations don't go as expected:</p>

            <div class="step-list">
                <li><strong>Check server logs</strong> - <code>tail -f server.log</code></li>
                <li><strong>Verify Weave traces</strong> - Look for 🍩 URLs in output</li>
                <li><strong>Inspect individual predictions</strong> - Debug single examples</li>
                <li><strong>Monitor API usage</strong> - Track costs and rate limits</li>
            </div>

            <div class="warning-box">
                <h4>⚠️ Common Issues</h4>
                <ul>
                    <li><strong>Server not running</strong> - Screenshots need the annotation service</li>
                    <li><strong>API keys missing</strong> - Check your .env file</li>
                    <li><strong>Rate limits</strong> - The system includes automatic retry logic</li>
                    <li><strong>Malformed outputs</strong> - LLM responses may need better prompts</li>
                </ul>
            </div>

            <h3>🎯 Single Example Testing</h3>
            <p>Test individual cases for debugging:</p>

            <pre><code class="language-python">async def test_single_example():
    weave.init("openui-dev")
    model = OpenUIModel(prompt_template=SYSTEM_PROMPT)

    # Test specific prompt
    result = await model.predict("Create a modern card component")
    print(f"Generated: {result}")

    # Score the result
    score = await scoring_model.predict(
        "Create a modern card component", 
        result
    )
    print(f"Scores: {score}")

# Run it
asyncio.run(test_single_example())</code></pre>

            <div class="example-box">
                <h4>🎯 Evaluation Workflow</h4>
                <ol>
                    <li>Start development server</li>
                    <li>Configure evaluation parameters</li>
                    <li>Run evaluation script</li>
                    <li>Monitor progress and logs</li>
                    <li>Analyze results in Weave UI</li>
                    <li>Iterate on model/prompts/dataset</li>
                </ol>
            </div>`

// advancedContent is the body of the "advanced" section.
const advancedContent = `<p>Now that you understand the basics, let's explore advanced features that make evaluations even more powerful.</p>

            <h3>🔍 Prompt Search & Optimization</h3>
            <p>OpenUI includes automatic prompt optimization using the HOGWILD approach:</p>

            <pre><code class="language-bash"># Enable prompt search mode
HOGWILD=1 python -m openui.eval.evaluate_weave gpt-4-turbo</code></pre>

            <div class="concept-card">
                <h3>🧬 How Prompt Search Works</h3>
                <ol class="step-list">
                    <li><strong>Baseline</strong> - Evaluate current prompt performance</li>
                    <li><strong>Variations</strong> - Generate prompt variations automatically</li>
                    <li><strong>Testing</strong> - Run evaluations on each variation</li>
                    <li><strong>Selection</strong> - Keep the best performing prompts</li>
                </ol>
            </div>

            <h3>🖼️ Advanced Screenshot Features</h3>
            <p>The screenshot system provides rich visual validation:</p>

            <pre><code class="language-python"># Screenshot configuration options
await gen_screenshots(
    name="component_test",
    html=generated_html,
    img_dir=output_directory,
    # Features:
    # - Desktop and mobile viewports
    # - Light and dark mode variants  
    # - Combined image outputs
    # - Automatic image optimization
)</code></pre>

            <h3>📊 Custom Metrics & Analytics</h3>
            <p>Build domain-specific evaluation metrics:</p>

            <pre><code class="language-python">@weave.op()
def component_complexity_score(example: dict, prediction: dict) -> dict:
    html = prediction['html']

    metrics = {
        'element_count': len(re.findall(r'&lt;\w+', html)),
        'class_count': len(re.findall(r'class="[^"]*"', html)),
        'nesting_depth': calculate_nesting_depth(html),
        'tailwind_usage': count_tailwind_classes(html)
    }

    # Normalize to 1-4 scale
    complexity_score = min(4, metrics['element_count'] / 5)

    return {
        'complexity': complexity_score,
        'metrics': metrics
    }</code></pre>

            <h3>🔄 A/B Testing Models</h3>
            <p>Compare different models systematically:</p>

            <pre><code class="language-python">async def compare_models():
    models = [
        OpenUIModel(model_name="gpt-3.5-turbo", temp=0.3),
        OpenUIModel(model_name="gpt-4-turbo", temp=0.1),
        OpenUIModel(model_name="claude-3-sonnet", temp=0.2)
    ]

    dataset = weave.ref("eval:v0").get()

    for model in models:
        evaluation = Evaluation(
            dataset=dataset,
            scorers=[scores, component_complexity_score]
        )
        await evaluation.evaluate(model)</code></pre>

            <div class="feature-grid">
                <div class="feature-card">
                    <h4>⚡ Performance Optimization</h4>
                    <ul>
                        <li>Async evaluation for speed</li>
                        <li>Batch processing</li>
                        <li>Caching strategies</li>
                        <li>Resource management</li>
                    </ul>
                </div>
                <div class="feature-card">
                    <h4>🔒 Production Readiness</h4>
                    <ul>
                        <li>Error handling & retries</li>
                        <li>Rate limit management</li>
                        <li>Monitoring & alerting</li>
                        <li>Cost tracking</li>
                    </ul>
                </div>
                <div class="feature-card">
                    <h4>📈 Advanced Analytics</h4>
                    <ul>
                        <li>Statistical significance</li>
                        <li>Confidence intervals</li>
                        <li>Trend analysis</li>
                        <li>Regression detection</li>
                    </ul>
                </div>
                <div class="feature-card">
                    <h4>🔧 Extensibility</h4>
                    <ul>
                        <li>Custom scorers</li>
                        <li>Plugin architecture</li>
                        <li>Integration hooks</li>
                        <li>Export capabilities</li>
                    </ul>
                </div>
            </div>

            <h3>🌐 Integration Patterns</h3>
            <p>Common ways to integrate evaluations into your workflow:</p>

            <div class="example-box">
                <h4>🔄 CI/CD Integration</h4>
                <pre><code class="language-yaml"># GitHub Actions example
- name: Run Evaluations
  run: |
    python -m openui.eval.evaluate_weave
    # Fail build if scores drop below threshold</code></pre>
            </div>

            <div class="example-box">
                <h4>📊 Monitoring & Alerting</h4>
                <pre><code class="language-python"># Alert on regression
if current_scores['relevance']['mean'] < baseline - 0.2:
    send_alert("Model performance regression detected")</code></pre>
            </div>

            <h3>🎯 Best Practices Summary</h3>
            <ul>
                <li><strong>Start simple</strong> - Basic text evaluation first</li>
                <li><strong>Iterate quickly</strong> - Use small datasets for development</li>
                <li><strong>Automate early</strong> - Integrate into development workflow</li>
                <li><strong>Monitor trends</strong> - Track performance over time</li>
                <li><strong>Document everything</strong> - Keep evaluation criteria clear</li>
            </ul>`

// conclusionContent is the body of the "conclusion" section.
const conclusionContent = `<p>Congratulations! You've learned how to build robust evaluation systems with Weave. Let's recap and explore what's next.</p>

<div class="concept-card">
    <h3>🎯 What You've Accomplished</h3>
    <ul>
        <li><strong>🧠 Core Concepts</strong> - Models, datasets, and scorers</li>
        <li><strong>📊 Dataset Management</strong> - Creation, versioning, and publishing</li>
        <li><strong>🤖 Model Building</strong> - Async, configurable, robust models</li>
        <li><strong>📏 Scoring Systems</strong> - Multi-dimensional AI-powered evaluation</li>
        <li><strong>🚀 Production Deployment</strong> - Running and debugging evaluations</li>
        <li><strong>⚡ Advanced Features</strong> - Optimization, A/B testing, monitoring</li>
    </ul>
</div>

<h3>🚀 Next Steps</h3>
<div class="feature-grid">
    <div class="feature-card">
        <h4>🔬 Experiment</h4>
        <p>Try the OpenUI evaluation system with your own prompts and datasets</p>
    </div>
    <div class="feature-card">
        <h4>📚 Learn More</h4>
        <p>Dive deeper into Weave documentation and advanced features</p>
    </div>
    <div class="feature-card">
        <h4>🛠️ Build Your Own</h4>
        <p>Apply these patterns to your own AI applications and use cases</p>
    </div>
    <div class="feature-card">
        <h4>🤝 Community</h4>
        <p>Join the community and share your evaluation experiences</p>
    </div>
</div>

<h3>🎁 Key Takeaways</h3>
<div class="step-list">
    <li><strong>Evaluation is crucial</strong> - You can't improve what you don't measure</li>
    <li><strong>Start simple, iterate fast</strong> - Basic evaluations beat no evaluations</li>
    <li><strong>Automate everything</strong> - Make evaluation part of your development flow</li>
    <li><strong>Multi-dimensional scoring</strong> - Single metrics rarely tell the full story</li>
    <li><strong>Weave makes it easy</strong> - Focus on your domain, not infrastructure</li>
</div>

<div class="example-box">
    <h4>🎯 Evaluation Maturity Levels</h4>
    <ul>
        <li><strong>Level 1: Manual</strong> - Ad-hoc testing by humans</li>
        <li><strong>Level 2: Automated</strong> - Scripted evaluations on fixed datasets</li>
        <li><strong>Level 3: Continuous</strong> - Integrated into development workflow</li>
        <li><strong>Level 4: Intelligent</strong> - Self-improving evaluation systems</li>
    </ul>
    <p>OpenUI demonstrates Level 3 practices, with some Level 4 features like prompt optimization.</p>
</div>

<h3>🔗 Useful Resources</h3>
<ul>
    <li><a href="https://github.com/wandb/openui" target="_blank">OpenUI GitHub Repository</a></li>
    <li><a href="https://weave-docs.wandb.ai/" target="_blank">Weave Documentation</a></li>
    <li><a href="https://wandb.ai/site/experiment-tracking" target="_blank">W&B Experiment Tracking</a></li>
    <li><a href="https://community.wandb.ai/" target="_blank">W&B Community Forum</a></li>
</ul>

<div class="warning-box">
    <h4>💡 Remember</h4>
    <p>Great evaluations are an investment in your AI application's quality and reliability. They pay dividends in confidence, debugging speed, and user satisfaction. Start today!</p>
</div>

<h3>🚀 Ready to Build?</h3>
<p>You now have all the tools and knowledge to build world-class evaluation systems. Go forth and evaluate! 🎉</p>`
