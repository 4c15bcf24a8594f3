package recommend

// defaultStopwords is the built-in English stopword list applied during text
// normalization and again when the vectorizer builds its vocabulary.
var defaultStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can", "can't",
	"cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't",
	"doing", "don't", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn't", "has", "hasn't", "have", "haven't", "having",
	"he", "he'd", "he'll", "he's", "her", "here", "here's", "hers", "herself",
	"him", "himself", "his", "how", "how's", "i", "i'd", "i'll", "i'm",
	"i've", "if", "in", "into", "is", "isn't", "it", "it's", "its", "itself",
	"let's", "me", "more", "most", "mustn't", "my", "myself", "no", "nor",
	"not", "of", "off", "on", "once", "only", "or", "other", "ought", "our",
	"ours", "ourselves", "out", "over", "own", "same", "shan't", "she",
	"she'd", "she'll", "she's", "should", "shouldn't", "so", "some", "such",
	"than", "that", "that's", "the", "their", "theirs", "them", "themselves",
	"then", "there", "there's", "these", "they", "they'd", "they'll",
	"they're", "they've", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "wasn't", "we", "we'd", "we'll", "we're",
	"we've", "were", "weren't", "what", "what's", "when", "when's", "where",
	"where's", "which", "while", "who", "who's", "whom", "why", "why's",
	"will", "with", "won't", "would", "wouldn't", "you", "you'd", "you'll",
	"you're", "you've", "your", "yours", "yourself", "yourselves",
}

// defaultSkillCatalog is the built-in catalog scanned when mining skills out
// of resume text. Multi-word entries are matched as whole phrases.
var defaultSkillCatalog = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
	"go", "rust", "swift", "kotlin", "scala", "r", "matlab", "perl",
	"react", "angular", "vue", "nodejs", "express", "django", "flask",
	"fastapi", "spring", "spring boot", "laravel", "rails", "asp.net",
	"html", "css", "sass", "less", "bootstrap", "tailwind",
	"sql", "nosql", "mongodb", "postgresql", "mysql", "oracle", "redis",
	"elasticsearch", "cassandra", "dynamodb", "firebase",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"ci/cd", "git", "github", "gitlab", "devops", "ansible", "chef", "puppet",
	"power bi", "tableau", "excel", "pandas", "numpy", "scipy", "matplotlib",
	"seaborn", "plotly", "jupyter", "spark", "hadoop", "kafka", "airflow",
	"ai", "ml", "machine learning", "deep learning", "tensorflow", "pytorch",
	"keras", "scikit-learn", "nlp", "computer vision", "opencv", "transformers",
	"android", "ios", "react native", "flutter", "xamarin", "ionic",
	"selenium", "cypress", "jest", "junit", "pytest", "testing", "automation testing",
	"agile", "scrum", "kanban", "waterfall", "tdd", "bdd",
	"rest api", "graphql", "microservices", "blockchain", "iot", "unity",
	"figma", "sketch", "photoshop", "ui/ux", "responsive design",
}
