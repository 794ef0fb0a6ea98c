package markup

import (
	"strings"
	"time"
)

const readmeTemplate = "# Project Name\n\n" +
	"A brief description of your project.\n\n" +
	"## Installation\n\n" +
	"```bash\nnpm install project-name\n```\n\n" +
	"## Usage\n\n" +
	"```javascript\nconst project = require('project-name');\nproject.doSomething();\n```\n\n" +
	"## Contributing\n\n" +
	"1. Fork the repository\n2. Create a feature branch\n3. Make your changes\n4. Submit a pull request\n\n" +
	"## License\n\n" +
	"MIT License"

const documentationTemplate = "# API Documentation\n\n" +
	"## Overview\n\n" +
	"This API provides access to our service endpoints.\n\n" +
	"### Authentication\n\n" +
	"All requests require an API key:\n\n" +
	"```\nAuthorization: Bearer YOUR_API_KEY\n```\n\n" +
	"### Endpoints\n\n" +
	"#### GET /users\n\n" +
	"Returns a list of users.\n\n" +
	"**Parameters:**\n" +
	"- `limit` (optional): Number of users to return\n" +
	"- `offset` (optional): Number of users to skip\n\n" +
	"**Response:**\n" +
	"```json\n{\n  \"users\": [\n    {\n      \"id\": 1,\n      \"name\": \"John Doe\",\n      \"email\": \"john@example.com\"\n    }\n  ]\n}\n```"

// blogTemplate has one {{date}} placeholder for the publication date.
const blogTemplate = "# Blog Post Title\n\n" +
	"*Published on {{date}}*\n\n" +
	"## Introduction\n\n" +
	"Welcome to this blog post where we'll explore...\n\n" +
	"## Main Content\n\n" +
	"### Section 1\n\n" +
	"Here's some important information about...\n\n" +
	"### Section 2\n\n" +
	"Let's dive deeper into...\n\n" +
	"## Conclusion\n\n" +
	"In summary, we've learned that...\n\n" +
	"---\n\n" +
	"*Tags: #technology #tutorial #guide*"

// Templates returns the names of the starter Markdown documents.
func Templates() []string {
	return []string{"blog", "documentation", "readme"}
}

// Template returns the named starter document, dated today where it has a date.
func Template(name string) (string, bool) {
	return TemplateAt(name, time.Now())
}

// TemplateAt is Template with an explicit date for the blog template.
func TemplateAt(name string, date time.Time) (string, bool) {
	switch strings.ToLower(name) {
	case "readme":
		return readmeTemplate, true
	case "documentation", "docs":
		return documentationTemplate, true
	case "blog":
		return strings.Replace(blogTemplate, "{{date}}", date.Format("1/2/2006"), 1), true
	default:
		return "", false
	}
}
