package chatbot

// DefaultRules is the quick-reply set shown on the marketing site. Emergency
// comes before pricing so "how much to fix a leak" is treated as urgent. A bare
// greeting gets a canned hello; a greeting followed by a question is answered
// by whichever rule the question matches, or by the assistant.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "emergency",
			Keywords: []string{"emergency", "leak", "leaking", "storm damage", "urgent", "tarp"},
			Reply: "Sorry to hear that! For active leaks or storm damage call our emergency line right away. " +
				"If you leave your name and phone number here, a crew lead will call you back as soon as possible.",
		},
		{
			Name:     "pricing",
			Keywords: []string{"price", "pricing", "cost", "quote", "estimate", "how much"},
			Reply: "Every roof is different, so we give free on-site estimates. " +
				"Share your name, phone number and address and we will schedule a visit.",
		},
		{
			Name:     "services",
			Keywords: []string{"services", "what do you do", "roofing", "gutters", "siding", "windows", "repair", "replacement"},
			Reply: "We handle roof replacement and repair, gutters, siding, windows and general exterior work. " +
				"Tell us about your project and we will point you in the right direction.",
		},
		{
			Name:     "hours",
			Keywords: []string{"hours", "open", "opening", "closed", "weekend", "saturday", "sunday"},
			Reply:    "Our office is open Monday to Friday 8am to 6pm and Saturday 9am to 2pm. Emergency calls are answered around the clock.",
		},
		{
			Name:     "insurance",
			Keywords: []string{"insurance", "claim", "adjuster", "insured", "licensed"},
			Reply: "We are fully licensed and insured, and we regularly work with insurance adjusters on storm claims. " +
				"We can inspect the damage and help document your claim.",
		},
		{
			Name:     "contact",
			Keywords: []string{"contact", "phone", "call", "email", "reach", "talk to someone"},
			Reply:    "You can use the contact form on this page, or leave your name, email and phone number here and we will reach out.",
		},
		{
			Name:     "thanks",
			Keywords: []string{"thanks", "thank you", "thx", "appreciate it"},
			Reply:    "You're welcome! Let us know if there is anything else we can help with.",
		},
		{
			Name:       "greeting",
			Keywords:   []string{"hi", "hello", "hey", "hi there", "hello there", "hey there", "good morning", "good afternoon", "good evening"},
			Reply:      "Hi there! How can we help with your roof or home project today?",
			Standalone: true,
		},
	}
}
