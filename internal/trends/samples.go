package trends

import (
	"fmt"

	"github.com/jonathan/job-tracker/internal/skills"
)

// minScrapedDescriptions is the threshold below which scraped results are
// topped up with samples.
const minScrapedDescriptions = 5

// SampleDescriptions returns built-in job descriptions seeded from the
// query, modeled on common real posting patterns. They keep the analysis
// useful when scraping is unavailable or comes back thin.
func SampleDescriptions(query string) []string {
	title := skills.TitleCase(query)
	return []string{
		fmt.Sprintf(`%s - We are seeking a talented %s with strong experience in Python,
machine learning, and data science. The ideal candidate will have hands-on
experience with TensorFlow, PyTorch, and scikit-learn. Must be proficient in
pandas, numpy, and have experience with deep learning and neural networks.
Experience with AWS cloud services, Docker containers, and Kubernetes
orchestration is highly preferred. Knowledge of natural language processing
(NLP), computer vision, and large language models (LLMs) including GPT and
transformer architectures is a plus.`, title, query),

		fmt.Sprintf(`Senior %s - Join our team to develop ML solutions and AI products.
Required skills include Python programming, scikit-learn, pandas, numpy, and
Jupyter notebooks. Experience with NLP, computer vision, reinforcement
learning, and LLM fine-tuning. Strong knowledge of React, Node.js, REST APIs,
and GraphQL. Familiarity with CI/CD pipelines, Git version control, GitHub
Actions, and agile/scrum methodologies. Experience with microservices
architecture, test-driven development (TDD), and code reviews.`, title),

		fmt.Sprintf(`%s Specialist - We need a proficient professional in machine learning
and data science. Required: Python, R, SQL, PostgreSQL, MongoDB, Redis.
Experience with Apache Spark, Hadoop, Airflow workflow orchestration, and
Databricks. Cloud experience with AWS (S3, EC2, Lambda), Azure, or Google
Cloud Platform (GCP). Knowledge of microservices architecture,
containerization with Docker, and orchestration with Kubernetes. Experience
with Terraform infrastructure as code.`, title),

		fmt.Sprintf(`%s Engineer - Looking for an experienced engineer with expertise in
Python, Java, JavaScript, TypeScript, and Go. Strong background in machine
learning, deep learning, and AI model development. Experience with
TensorFlow, PyTorch, Keras, and MLflow for model tracking. Knowledge of
computer vision, OpenCV, and image processing. Familiarity with big data
tools like Spark, Kafka, and Elasticsearch. Experience with cloud platforms
(AWS, Azure, GCP) and DevOps tools (Jenkins, Ansible, Terraform).
Understanding of software engineering best practices including code reviews,
pair programming, and agile development.`, title),

		fmt.Sprintf(`%s Developer - We're hiring a developer with strong ML/AI background.
Skills required: Python, scikit-learn, pandas, numpy, matplotlib. Experience
with neural networks, CNNs, RNNs, LSTMs, and transformer models. Knowledge
of Hugging Face transformers library and model fine-tuning. Experience with
data pipelines, ETL processes, and data warehousing (Snowflake). Proficiency
in SQL and NoSQL databases. Cloud experience with AWS services. Familiarity
with React frontend development and Node.js backend services.`, title),

		fmt.Sprintf(`%s - Seeking a professional with machine learning and software
engineering expertise. Must have: Python, TensorFlow, PyTorch, scikit-learn.
Experience with natural language processing, computer vision, and
reinforcement learning. Knowledge of LLMs, GPT models, BERT, and transformer
architectures. Strong programming skills in Python, Java, or C++. Experience
with cloud computing (AWS, Azure), Docker, Kubernetes, and CI/CD pipelines.
Database knowledge: PostgreSQL, MongoDB, Redis. Understanding of
microservices, REST APIs, and GraphQL.`, title),
	}
}
