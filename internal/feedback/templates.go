package feedback

// Recommendation pairs a content-site page name with the sentence that points
// the respondent at it. Page names come from a fixed closed set; callers map
// them to navigable URLs.
type Recommendation struct {
	Page string
	Text string
}

// improvementIntro brackets the weakness mention. Suffix is empty for the
// single-clause form.
type improvementIntro struct {
	Prefix string
	Suffix string
}

// templateSet holds every phrase pool used by Construct. The per-outcome maps
// are keyed by outcome index 0..5 and must cover all six outcomes; that is
// checked once at startup, not per request.
type templateSet struct {
	intros            []string
	outcomePhrasings  map[int][]string
	improvementIntros []improvementIntro
	advice            map[int][]string
	reading           map[int][]Recommendation
}

var defaultTemplates = &templateSet{
	intros: []string{
		"It's great to see that you've got a good grasp on",
		"From your quiz results, we can see that you're great at",
		"It seems like you're already good at",
	},

	// Positive phrasings name an outcome; the same pool names the weak area
	// after an improvement intro.
	outcomePhrasings: map[int][]string{
		0: {
			"understanding what fake news is",
			"knowing what fake news is",
		},
		1: {
			"understanding what biased news is",
			"understanding what biased information looks like",
		},
		2: {
			"knowing how to identify biased information online",
			"being able to identify biased information",
		},
		3: {
			"being able to recognise intentional fake news",
			"recognising intentional fake news",
			"being able to recognise fake news which had been created intentionally",
		},
		4: {
			"being able to recognise unintentional fake news",
			"recognising unintentional fake news",
		},
		5: {
			"understanding some of the consequences of falling for fake news",
			"understanding some of the issues associated with believing fake news",
			"knowing the consequences of falling for fake news",
		},
	},

	improvementIntros: []improvementIntro{
		{Prefix: "However, it seems like", Suffix: "is a challenge for you"},
		{Prefix: "However, it seems like you would benefit from working on"},
		{Prefix: "Although there's room for improvement on"},
		{Prefix: "But unfortunately you scored lowly on"},
		{Prefix: "However, it could be worth you spending some time on",
			Suffix: "so that you're better equipped to avoid believing misinformation"},
	},

	advice: map[int][]string{
		0: {
			"You can improve this by researching different types of fake news.",
			"You can improve on this by learning about different sources.  Having a strong understanding on the key differences between quality reputable sources, and sources with no accountability.",
		},
		1: {
			"You should look into some example's of far left media websites, and far right media websites.  Try having a read through some of their articles and see if you can identify any key differences.",
		},
		2: {
			"You should try learning about 'story selection bias,' which can help you understand how various media sources try and shape your worldview by the type of stories they publish.",
			"You should focus on trying to understand how to identify different loaded words and the emotions the author tries to envoke when they use them.",
		},
		3: {
			"You can improve this by learning about different types of sources and knowing how to identify quality reputable organisations versus sources that have no accountability.",
			"You can improve this by learning to identify the agenda behind different online posts or news articles.",
		},
		4: {
			"You can improve this by learning about different political biases people have, and how they influence the type of information individual's choose to share online.",
		},
		5: {
			"It won't always be an issue if we believe some misinformation online, however there is always a danger associated with it.",
			"Educating yourself on what some of the consequences could be will help you learn the imporance of recognising misinformation.",
		},
	},

	reading: map[int][]Recommendation{
		0: {
			{Page: "The definition of fake news",
				Text: "Based on your results, we recommend you read the following page to learn the different types of fake news."},
			{Page: "Real life examples",
				Text: "From your results, we recommend you read though some of our real-life examples on fake news.  By seeing some example's on fake news, you can develop a better understanding on what it is and what it looks like."},
			{Page: "The definition of fake news",
				Text: "We recommend you check out our page on the definition of fake news to gain a better understanding on the differences between various kinds of fake news."},
			{Page: "The definition of fake news",
				Text: "To further develop your understanding, have a look at the following educational page to help gain a better overview on what fake news is."},
		},
		1: {
			{Page: "The existence of fake news/Biased Information",
				Text: "Based on these results, we recommend you have a look at the following page.  This page should help you gain an understanding on how news stories can contain bias, even if the author's were not intentional about adding it."},
			{Page: "The existence of fake news/Biased Information",
				Text: "We recommend you have a look at our page on why fake news is created.   This should help clarify what biased news is and how it gets created."},
		},
		2: {
			{Page: "Tips to spot fake news/How can you spot biased news",
				Text: "Based on your results, we recommend you read the following page to learn about how you can recognise bias in the media."},
			{Page: "Tips to spot fake news/How can you spot biased news",
				Text: "Have a look at the following page.  This should by learning some extra tips on recognising media bias, you'll be able to help prevent yourself from falling for this form of misinformation."},
		},
		3: {
			{Page: "Tips to spot fake news",
				Text: "As it seems like you havce trouble recognising fake news, we recommend you read our page on spotting fake news."},
			{Page: "Tips to spot fake news",
				Text: "From your quiz results, we recommend you have a look at our article on tips to spot fake news.  This should help you become more comfortable in recognising intentiona fake news."},
			{Page: "Real life examples",
				Text: "As it seems you're having trouble recognising unintentional misinformation online, we recommend you have a look at our real life example's page.  Here, you can see some fake news stories which have spread online, and we give you tips on how this story could have been identified as being fake news."},
		},
		4: {
			{Page: "Tips to spot fake news",
				Text: "Have a look at our article on spotting fake news.  This should help give you some tips and ideas on the best ways to spot fake news and prevent yourself from falling for misinformation."},
			{Page: "Real life examples",
				Text: "As it seems you're having trouble recognising intentional misinformation online, we recommend you have a look at our real life example's page.  Here, you can see some fake news stories which have spread online, and we give you tips on how this story could have been identified as being fake news."},
		},
		5: {
			{Page: "The importance of identifying fake news",
				Text: "Given your low score in understanding the consequences of believing misinformation online, we suggest that you read the following page which outline's the key reasons why it's important to ensure you're able to identify fake news and help prevent it spreading."},
			{Page: "The importance of identifying fake news",
				Text: "To further develop your understanding, have a look at the following article on the importance of identifying fake news.  This article explain's why fake news can be a serious issue when it spreads, and it will help you gain an understanding on why it will benefit you to be able to recognise fake news."},
		},
	},
}
