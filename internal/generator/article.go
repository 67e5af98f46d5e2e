package generator

import (
	"fmt"
	"strings"
)

// Section is one heading+body block of a generated article
type Section struct {
	Heading string
	Body    string
}

// ArticleSections assembles the full section list for a researched topic
func ArticleSections(title, description, research string) []Section {
	lower := strings.ToLower(title)

	intro := fmt.Sprintf("In today's rapidly evolving world, %s has become increasingly important. ", lower)
	if description != "" {
		intro += description + " "
	}
	if research != "" {
		researchIntro := research
		if runes := []rune(researchIntro); len(runes) > 200 {
			researchIntro = string(runes[:200]) + "..."
		}
		intro += "\n\n" + researchIntro
	}

	return []Section{
		{"Introduction", intro},
		{"Key Points", keyPoints(lower, research)},
		{"Important Considerations", considerations(lower)},
		{"Practical Applications", applications(lower)},
		{"Future Outlook", futureOutlook(lower)},
		{"Conclusion", conclusion(lower)},
	}
}

// BasicSections is the degraded article used when research fails
func BasicSections(title, description string) []Section {
	lower := strings.ToLower(title)
	return []Section{
		{"Introduction", fmt.Sprintf("%s is an important topic that deserves attention and understanding. %s", title, description)},
		{"Overview", fmt.Sprintf("This article provides insights into %s and its various aspects.", lower)},
		{"Key Benefits", fmt.Sprintf("Understanding %s can provide valuable benefits and insights.", lower)},
		{"Conclusion", fmt.Sprintf("In summary, %s represents an area of significant interest and potential.", lower)},
	}
}

// RenderSections flattens sections into the stored post content
func RenderSections(sections []Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## ")
		b.WriteString(s.Heading)
		b.WriteString("\n\n")
		b.WriteString(s.Body)
	}
	return b.String()
}

func keyPoints(lower, research string) string {
	points := []string{
		fmt.Sprintf("Understanding the fundamentals of %s is essential for anyone interested in this topic.", lower),
		fmt.Sprintf("Recent developments in %s have shown promising results and potential for growth.", lower),
		fmt.Sprintf("The impact of %s extends beyond immediate applications to long-term implications.", lower),
	}
	if research != "" {
		if sentences := strings.Split(research, ". "); len(sentences) > 3 {
			points = append(points, sentences[1]+".")
		}
	}
	return bulletJoin(points)
}

func considerations(lower string) string {
	return bulletJoin([]string{
		fmt.Sprintf("When examining %s, it's important to consider multiple perspectives and viewpoints.", lower),
		fmt.Sprintf("The complexity of %s requires careful analysis and understanding of underlying factors.", lower),
		fmt.Sprintf("Stakeholders should evaluate both benefits and potential challenges associated with %s.", lower),
	})
}

func applications(lower string) string {
	return bulletJoin([]string{
		fmt.Sprintf("Real-world applications of %s can be found across various industries and sectors.", lower),
		fmt.Sprintf("Organizations are increasingly adopting strategies related to %s to improve their operations.", lower),
		fmt.Sprintf("Individual practitioners can benefit from implementing best practices associated with %s.", lower),
	})
}

func futureOutlook(lower string) string {
	return fmt.Sprintf("The future of %s looks promising with continued research and development. "+
		"Emerging trends suggest that %s will play an increasingly important role in shaping future developments. "+
		"Investment in %s is expected to grow as more organizations recognize its potential value and impact.",
		lower, lower, lower)
}

func conclusion(lower string) string {
	return fmt.Sprintf("In conclusion, %s represents a significant area of interest and development. "+
		"Understanding its various aspects can help individuals and organizations make informed decisions. "+
		"As we move forward, staying updated with the latest developments in this field will be crucial for success.",
		lower)
}

func bulletJoin(items []string) string {
	bullets := make([]string, len(items))
	for i, item := range items {
		bullets[i] = "• " + item
	}
	return strings.Join(bullets, "\n\n")
}
