package insight

import "github.com/alexanderramin/timepaisa/internal/llm"

// responseSchema is sent with every request and used to check the reply.
var responseSchema = &llm.Schema{
	Type: llm.TypeObject,
	Properties: map[string]*llm.Schema{
		"roast":             {Type: llm.TypeString, Description: "A witty, honest critique of their habits."},
		"summary":           {Type: llm.TypeString, Description: "A constructive summary of the week."},
		"productivityScore": {Type: llm.TypeInteger, Description: "Score out of 100."},
		"financialScore":    {Type: llm.TypeInteger, Description: "Score out of 100."},
		"nextWeekPlan": {
			Type: llm.TypeArray,
			Items: &llm.Schema{
				Type: llm.TypeObject,
				Properties: map[string]*llm.Schema{
					"day":   {Type: llm.TypeString},
					"focus": {Type: llm.TypeString},
					"limit": {Type: llm.TypeString},
				},
				Required: []string{"day", "focus", "limit"},
			},
		},
		"tips": {Type: llm.TypeArray, Items: &llm.Schema{Type: llm.TypeString}},
	},
	Required: []string{"roast", "summary", "productivityScore", "financialScore", "nextWeekPlan", "tips"},
}
