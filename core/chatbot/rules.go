package chatbot

import (
	"fmt"
	"strings"
)

// rule maps trigger keywords to a canned response. Rules are evaluated in
// order; the first one whose keyword appears in the (lowercased) question wins.
type rule struct {
	keywords []string
	response string
}

var rules = []rule{
	{
		keywords: []string{"prerequisite", "requirement"},
		response: "No prior experience is needed for most of our beginner courses. For intermediate and advanced courses, we recommend completing the prerequisite courses listed on the course page.",
	},
	{
		keywords: []string{"duration", "how long"},
		response: "Our courses range from 4-12 weeks depending on complexity. Most students spend 5-10 hours per week on coursework. You can learn at your own pace.",
	},
	{
		keywords: []string{"certificate", "certification"},
		response: "Yes! Upon completing all course modules and passing the final assessment, you will receive a verified certificate of completion that you can share on LinkedIn.",
	},
	{
		keywords: []string{"cost", "price", "free"},
		response: "We offer both free and premium courses. Basic courses are available at no cost, while premium courses with advanced content start at competitive prices.",
	},
	{
		keywords: []string{"job", "career"},
		response: "Our courses are designed to help you build career-ready skills. Many graduates have gone on to land jobs at top tech companies. We also offer career guidance resources.",
	},
	{
		keywords: []string{"help", "support"},
		response: "I can help you with course information, prerequisites, certificates, enrollment, and more. For technical issues, please reach out to our support team.",
	},
}

// respond returns the canned response for the first matching rule, or a
// generic templated reply (optionally naming a course) when nothing matches.
// TODO: replace the fallback with a real model-backed completion.
func respond(question, courseTitle string) string {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.response
			}
		}
	}

	var prefix string
	if courseTitle != "" {
		prefix = fmt.Sprintf("For %q, ", courseTitle)
	}
	return fmt.Sprintf(
		"Great question! %sI recommend exploring the course content and practice exercises. "+
			"Our instructors have designed comprehensive materials to cover this topic thoroughly. "+
			"Would you like more specific information?", prefix,
	)
}
