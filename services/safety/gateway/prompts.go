package gateway

import (
	"fmt"

	"google.golang.org/genai"
)

var dangerZoneSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"alerts": {
			Type:        genai.TypeArray,
			Description: "Danger zone alerts near the specified location.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"location":    {Type: genai.TypeString, Description: "The location of the danger zone."},
					"description": {Type: genai.TypeString, Description: "A description of the incident."},
					"severity":    {Type: genai.TypeString, Enum: []string{"low", "medium", "high"}},
				},
				Required: []string{"location", "description", "severity"},
			},
		},
	},
	Required: []string{"alerts"},
}

var distressSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"isDistressed": {Type: genai.TypeBoolean, Description: "Whether the person appears to be in distress."},
		"reason":       {Type: genai.TypeString, Description: "A brief assessment of the situation."},
		"safetyTips": {
			Type:        genai.TypeArray,
			Description: "Actionable safety tips relevant to the situation.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"isDistressed", "reason", "safetyTips"},
}

func dangerZonePrompt(place string) string {
	return fmt.Sprintf(`You are an assistant that identifies potential danger zones from community incident reports.

The user's location is: %q.
Identify potential danger zones in or very near that location. For each alert give the location (be specific if possible), a description of the incident and a severity of low, medium or high.
Consider the type of incident, the time of day and the relevance to the user's location when choosing the severity.
Do not include any alerts that are more than 24 hours old.
If the location is ambiguous or too broad, give general alerts for the most likely interpretation.`, place)
}

func situationPrompt(situation string) string {
	return fmt.Sprintf(`You are an assistant helping a person who describes a potentially unsafe or concerning situation.

The person wrote:
%q

Assess the situation. Set isDistressed when the description suggests the person is in danger or distress, give a brief reason and 2-4 actionable safetyTips tailored to the situation.
If the text is vague or does not describe a safety concern, say so in the reason and give general safety tips.
If the situation sounds like an immediate emergency, one tip must be to contact emergency services.`, situation)
}

func audioPrompt(placeName, movement string) string {
	return fmt.Sprintf(`You are an assistant that listens for signs of distress.

The attached audio was recorded at %q while the person's movement was described as %q.
Decide whether the audio and context indicate distress. Set isDistressed, give a brief reason and 2-4 actionable safetyTips.`, placeName, movement)
}
