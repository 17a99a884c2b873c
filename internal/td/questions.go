// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package td

// intakeQuestion is one question asked during project intake. The hint is
// shown under the question to steer the operator's answer.
type intakeQuestion struct {
	Text string
	Hint string
}

// listSection collects free-form entries under numbered keys until the
// operator submits an empty line.
type listSection struct {
	Title       string
	Description string
	ItemLabel   string
	KeyPrefix   string
}

const trlQuestion = "What Technology Readiness Level (TRL) is this project? Give your answer as a number from 1-9."

var primaryGoalSection = struct {
	Title       string
	Description string
	Questions   []intakeQuestion
}{
	Title: "Technology Overview",
	Description: "You should be as clear and direct with your answers as possible. " +
		"Avoid using connectives like 'and' or 'but' unless absolutely necessary. " +
		"If there are multiple answers to the questions, please select the single most important or relevant answer.",
	Questions: []intakeQuestion{
		{
			Text: "Who does this technology solve a problem for? What is the intended target audience?",
			Hint: "Be as specific as you can. For example: in the case of a new crop strain this might be " +
				"'Farmers in the United Kingdom whose crop is composed of >50% wheat'.",
		},
		{
			Text: "What will your technology do? What is the intended outcome for the target stakeholders and how will it deliver on this outcome?",
			Hint: "E.g. 'We want to develop a new bio-based material fashioned as baby clothing that detects hormonal changes " +
				"in a baby's sweat and/or tears that helps mothers quickly identify their baby's needs. It changes colour based " +
				"on the different needs of the baby (e.g. hunger, tiredness, fear, discomfort) so that the baby can more " +
				"effectively communicate to the mother despite being unable to talk or gesture.'",
		},
		{
			Text: "How will it improve upon existing solutions?",
			Hint: "What do the existing solutions for this problem do and how will you ensure yours solves the problem better, cheaper or faster?",
		},
		{
			Text: "Are there any quantifiable targets that you're aiming for?",
			Hint: "Numbers help us measure success and they also give us a target to work towards to optimise efficiencies, " +
				"yields, costs etc. For example: 'Our biosensor must have a 95% or greater detection accuracy to compete with " +
				"existing chemical sensors'.",
		},
		{
			Text: "Do you have a timeline in mind?",
			Hint: "When would you like to complete this project? Are there any upcoming awards or exhibitions you would like to demonstrate a prototype at?",
		},
		{
			Text: "What does success look like for your solution?",
			Hint: "What quantitative or qualitative outcomes will determine that your work is complete? E.g. 'We want to scale " +
				"our carbon capture technology to actively remove 1Gt of CO2 per year in the Northern Hemisphere'.",
		},
		{
			Text: "Is the solution's primary purpose to produce a tangible result (e.g. a product/material) or something intangible (e.g. confidence/status)?",
		},
	},
}

var statusSection = struct {
	Title       string
	Description string
	Questions   []intakeQuestion
}{
	Title:       "Status",
	Description: "Please help us understand where this project is currently at and what progress (if any) has been made towards the primary goal.",
	Questions: []intakeQuestion{
		{Text: trlQuestion},
		{Text: "Please justify why this project is currently at a TRL [X]."},
		{Text: "Do you have any data/results that support the claims made for TRL [X]?"},
		{Text: "Do you have any data/results that highlight the current/projected performance of the system?"},
		{Text: "What does the current roadmap look like? What is next on the horizon?"},
	},
}

var listSections = []listSection{
	{
		Title: "Secondary Goals",
		Description: "Secondary goals are additional objectives that are achieved in support of or as a result of solving the " +
			"primary problem. For example, your primary goal might be 'Decrease the development time required to prototype new " +
			"GM crop species'. In this case, some secondary goals might be 'Increase the number of new GM crop species developed " +
			"and deployed by our customers per annum' or 'Reduce the cost associated with R&D of new GM crop species'. " +
			"Place them in descending order of importance (highest to lowest).",
		ItemLabel: "Critical Sub-Goal",
		KeyPrefix: "SubGoal",
	},
	{
		Title: "Must-Have Features",
		Description: "Only include features/characteristics which are absolutely essential to the primary goal. Please place " +
			"them in descending order of importance (highest importance to lowest). E.g. 'Must be 100% biodegradable'.",
		ItemLabel: "Must-Have Feature",
		KeyPrefix: "Feature",
	},
	{
		Title: "Nice-to-Have Features",
		Description: "These are features that would be beneficial to the primary or secondary goals but are not essential. " +
			"Please place them in descending order of importance (highest importance to lowest).",
		ItemLabel: "Nice-to-Have Feature",
		KeyPrefix: "Feature",
	},
	{
		Title: "Constraints",
		Description: "What are the constraints that you must work within? These could be technical, financial, or regulatory " +
			"constraints. Please place them in descending order of importance (highest importance to lowest). For example: " +
			"'The detection signal will need an amplification mechanism to ensure that the whole garment changes color visibly " +
			"in response to localized signals.'",
		ItemLabel: "Constraint",
		KeyPrefix: "Constraint",
	},
}

// trlMark describes one technology readiness level.
type trlMark struct {
	Value       int
	Label       string
	Description string
}

var trlMarks = []trlMark{
	{
		Value: 1,
		Label: "1. Basic Principles Observed",
		Description: "Observations and reported findings provide the scientific underpinning for potential future " +
			"technologies.",
	},
	{
		Value: 2,
		Label: "2. Technology Concept Formulated",
		Description: "Conceptual work and the identification of the application are developed based on the observations " +
			"from TRL 1.",
	},
	{
		Value: 3,
		Label: "3. Experimental Proof of Concept",
		Description: "Proof of concept is established through experimentation. At this stage, the focus shifts from " +
			"theoretical work to experimental validation.",
	},
	{
		Value: 4,
		Label: "4. Technology Validated in Lab",
		Description: "The technology is tested in a lab environment to establish that it will work according to the " +
			"concept.",
	},
	{
		Value: 5,
		Label: "5. Technology Validated in Relevant Environment",
		Description: "Further testing validates the technology in a simulated operational environment, moving beyond " +
			"the lab.",
	},
	{
		Value: 6,
		Label: "6. Technology Demonstrated in Relevant Environment",
		Description: "A prototype or system is tested in a relevant environment that closely matches the intended " +
			"operational conditions. This is a pivotal step for demonstrating practical feasibility.",
	},
	{
		Value: 7,
		Label: "7. System Prototype Demonstrated in Operational Environment",
		Description: "A prototype is tested in its intended operational environment to demonstrate performance in the " +
			"actual conditions in which it will be used.",
	},
	{
		Value: 8,
		Label: "8. System Complete and Qualified",
		Description: "The system is finalized and fully qualified through testing. It meets all the necessary standards " +
			"and is ready for production.",
	},
	{
		Value: 9,
		Label: "9. Actual System Proven in Operational Environment",
		Description: "The final stage where the technology is fully integrated and in regular operation. It has been " +
			"proven to work reliably over time and is ready for full-scale deployment.",
	},
}
