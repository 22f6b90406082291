package questionbank

var riskTolerance = Section{
	ID:    Tolerance,
	Title: "Risk Tolerance",
	Questions: []Question{
		{
			Prompt: "How do you feel when thinking about taking financial risks?",
			Options: []string{
				"Thrilled — I enjoy taking risks for higher rewards",
				"Excited — I’m open to taking risks",
				"Neutral — I can accept risks but don’t seek them",
				"Uneasy — I’m cautious about taking risks",
				"Afraid — I strongly avoid financial risks",
			},
		},
		{
			Prompt: "Imagine there’s a sudden global market crash caused by an unexpected event that experts don’t yet understand. Headlines are panicking, your portfolio has fallen 20% in just a few weeks, and news outlets are warning of more uncertainty. How would you most likely respond?",
			Options: []string{
				"Invest more",
				"Hold steady and wait for markets to recover",
				"Do nothing immediately, but watch closely",
				"Sell part of my investments",
				"Sell most or all of my investments",
			},
		},
		{
			Prompt: "You’re given an unexpected R50 000 bonus. You can either keep it safely or take a chance at earning more. Which option sounds most like you?",
			Options: []string{
				"Risk it all for a 10 % chance to make ten times your money.",
				"Take a 25 % chance to triple it, or lose it all.",
				"Take a 50 % chance to double it, or lose it all.",
				"50 % chance of getting R75 000, or 50 % chance of getting R25 000.",
				"Keep the full R50 000 — guaranteed.",
			},
		},
		{
			Prompt: "A close friend is launching a new renewable-energy business. They believe it could return 5–10× your investment within five years, but there’s a good chance you could lose everything. If you could afford it, how much would you realistically invest?",
			Options: []string{
				"A large stake — I’d put in whatever it takes if the upside looks exciting.",
				"A significant amount — up to six months’ income.",
				"A moderate amount — two to three months’ income.",
				"A small amount — maybe one month’s income.",
				"Nothing — I wouldn’t risk my capital on something so uncertain.",
			},
		},
		{
			Prompt: "How much risk are you willing to take with your finances right now?",
			Options: []string{
				"A lot — I want aggressive growth",
				"A fair amount — I’m comfortable with moderate–high risk",
				"A balanced amount — I want moderate risk",
				"A little — I prefer low risk",
				"None — I want safety and stability",
			},
		},
		{
			Prompt: "Which investment option appeals to you most?",
			Options: []string{
				"Very high risk / very high return potential",
				"High risk / high return potential",
				"Moderate risk / moderate return potential",
				"Low risk / low return potential",
				"No risk / low but guaranteed return",
			},
		},
		{
			Prompt: "When you see alarming financial news or market headlines that could affect your portfolio, how do you typically react?",
			Options: []string{
				"I ignore most of it — short-term noise doesn’t bother me",
				"I read it, but rarely take any action",
				"I monitor my investments more closely for a while",
				"I feel anxious and consider adjusting my portfolio",
				"I often make quick changes or contact my advisor immediately",
			},
		},
		{
			Prompt: "If your investments moved up or down sharply from week to week, how would that affect you?",
			Options: []string{
				"I’d see it as normal and ignore short-term swings",
				"I’d stay calm but stay aware of the movements",
				"I’d check more often and feel a little uneasy",
				"I’d feel stressed and consider changing my investments",
				"I’d lose sleep or want to exit volatile investments entirely",
			},
		},
	},
}

var riskCapacity = Section{
	ID:    Capacity,
	Title: "Risk Capacity",
	Questions: []Question{
		{
			Prompt: "How stable and predictable is your main source of income?",
			Options: []string{
				"Very stable and highly predictable",
				"Mostly stable with minor uncertainty",
				"Moderately stable, some ups and downs",
				"Unstable, often fluctuates",
				"Very unstable and unpredictable",
			},
		},
		{
			Prompt: "How does your income compare to your regular expenses?",
			Options: []string{
				"Much higher — I have a large surplus each month",
				"Higher — I usually save comfortably",
				"About equal — I break even most months",
				"Lower — I sometimes struggle to cover expenses",
				"Much lower — I frequently rely on debt or savings",
			},
		},
		{
			Prompt: "Thinking about your family and future, which of the following best describes your situation regarding financial dependents and potential inheritance?",
			Options: []string{
				"I have no dependents and expect a significant inheritance or financial support later in life",
				"I have few or no dependents and expect a moderate inheritance in future",
				"I have few or no dependents, and any inheritance I might receive is uncertain",
				"I have some dependents and don’t expect much inheritance support",
				"I have several people who rely on me financially, and I don’t expect any inheritance",
			},
		},
		{
			Prompt: "Excluding your home loan or car finance, how would you describe your current debt situation?",
			Options: []string{
				"I’m completely debt-free",
				"I have no debt, though I sometimes use a credit card and pay it off immediately",
				"I have manageable debts that I usually pay off by the end of the month",
				"I have debts that sometimes feel difficult to manage or cause financial pressure",
				"I have significant debts that are difficult to manage",
			},
		},
		{
			Prompt: "How many months of living expenses could you cover using your savings and other easily accessible liquid assets?",
			Options: []string{
				"More than 12 months",
				"7–12 months",
				"4–6 months",
				"1–3 months",
				"Less than 1 month / none",
			},
		},
		{
			Prompt: "If you were to experience a major financial setback, how confident are you in your ability to recover through future income or resources?",
			Options: []string{
				"Very confident — I could recover quickly through income or other assets",
				"Fairly confident — I could recover over time with some adjustments",
				"Somewhat confident — recovery would take time and careful planning",
				"Not very confident — recovery would be difficult",
				"Not confident at all — it would be extremely hard to recover financially",
			},
		},
		{
			Prompt: "How likely are you to face major expenses or financial obligations in the next five years (such as education costs, medical costs, or familial changes)?",
			Options: []string{
				"Very unlikely — no large expenses expected",
				"Somewhat unlikely — small chance of moderate expenses",
				"Uncertain — depends on future circumstances",
				"Somewhat likely — a few large expenses expected",
				"Very likely — significant expenses are definite or planned",
			},
		},
		{
			Prompt: "If your income were to decrease or investment returns were lower for a period of time, how easily could you reduce your expenses to adjust?",
			Options: []string{
				"I could easily scale down my lifestyle with minimal impact",
				"I could comfortably reduce expenses for a while if necessary",
				"I could reduce some costs with moderate effort",
				"It would be challenging — I could cut back a little, but not much",
				"It would be very difficult — my expenses are largely fixed",
			},
		},
	},
}
