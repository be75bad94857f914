package openai

import "fmt"

const suggestionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "corrected_text": {
      "type": "string"
    }
  },
  "required": ["corrected_text"],
  "additionalProperties": false
}`

const suggestionPromptTemplate = `You are a spelling correction assistant for a food search service. Queries
mention dishes, cuisines, restaurants, and place names.

Your task: fix spelling mistakes in the user's query and return JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Fix only words that look misspelled. Do not rephrase or reorder the query.
- Be conservative: if a word could be a dish name, cuisine, or place name, leave it unchanged.
- Preserve the original casing and word order.
- If nothing needs fixing, return the query unchanged as corrected_text.
- The JSON must parse without errors; no trailing commas, no extra keys, and no text outside the object.`

const maskResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "predictions": {
      "type": "array",
      "items": {
        "type": "string"
      }
    }
  },
  "required": ["predictions"],
  "additionalProperties": false
}`

const maskPromptTemplate = `One word in the following text has been replaced with the placeholder %s.
Predict the %d most likely words for the placeholder, most likely first, and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Each prediction is a single lowercase word.
- Order predictions from most likely to least likely.
- Return exactly %d predictions when possible, fewer only if the placeholder allows very few fillers.
- The JSON must parse without errors; no trailing commas, no extra keys, and no text outside the object.`

// buildSuggestionPrompt returns the system prompt for the contextual suggester.
func buildSuggestionPrompt() string {
	return fmt.Sprintf(suggestionPromptTemplate, suggestionResponseSchema)
}

// buildMaskPrompt returns the system prompt for masked-token prediction.
func buildMaskPrompt(maskToken string, topK int) string {
	return fmt.Sprintf(maskPromptTemplate, maskToken, topK, maskResponseSchema, topK)
}
