package namegen

import (
	"fmt"
	"strings"
)

// DefaultSystemPrompt positions the model as a naming expert. Overridable via
// the generation section of the config file.
const DefaultSystemPrompt = "You are a creative naming expert that specializes in creating unique, memorable brand names. You understand linguistics, marketing psychology, and brand positioning."

const promptTemplate = `Generate %d unique and creative name suggestions for a %s in the %s industry.

Description: %s

Key traits: %s

For each name, provide:
1. The name itself (should be unique, memorable, and not a common word)
2. A brief meaning or explanation (1-2 sentences)
3. A style category (Modern, Classic, Playful, Technical, Luxurious, etc.)

Format the response as a JSON object with a "names" array containing objects with "name", "meaning", and "styleCategory" properties.
`

// CompilePrompt renders the user prompt for a validated request. Pure and
// deterministic; the requested JSON shape ("names" array of name/meaning/
// styleCategory objects) is the contract the Normalizer parses against.
func CompilePrompt(req NameRequest, suggestionCount int) string {
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("A %s in the %s industry", req.NamingType, req.Industry)
	}

	return fmt.Sprintf(promptTemplate,
		suggestionCount,
		req.NamingType,
		req.Industry,
		description,
		strings.Join(req.Traits, ", "),
	)
}
