package teas

// Quiz ids and option keys are assigned in init, from their position.
var teas = []*Tea{
	{
		Kind:          White,
		Name:          "White Tea",
		Subtitle:      "The Most Delicate",
		Origin:        "Fujian Province, China. White tea originated in the Fuding and Zhenghe counties during the Song Dynasty (960-1279 AD).",
		FlavorProfile: "Delicate, sweet, floral, and slightly fruity with subtle notes of honey and melon. Very light-bodied with minimal astringency.",
		Processing:    "White tea undergoes minimal processing. The leaves are simply withered and dried, with no rolling, oxidation, or firing. This preserves the natural antioxidants and delicate flavors.",
		HealthBenefits: []string{
			"Highest antioxidant content among all teas",
			"May help reduce risk of cardiovascular disease",
			"Contains L-theanine for calm focus",
			"Low in caffeine compared to other teas",
			"May support healthy skin",
		},
		BrewingTips: "Use water at 175-185°F (80-85°C). Steep for 4-5 minutes. Use 2-3 grams per 8 oz cup. Can be steeped multiple times.",
		FunFacts: []string{
			"Named for the white downy hairs on the young tea buds",
			"Traditionally made only from the youngest tea buds",
			"Silver Needle (Bai Hao Yin Zhen) is the most prized white tea",
			"Contains the most polyphenols of any tea type",
		},
		Quizzes: []*Quiz{
			{
				Question: "What makes white tea unique in terms of processing?",
				Options: []*Option{
					{Text: "It undergoes full oxidation"},
					{Text: "It has minimal processing - just withered and dried", Correct: true},
					{Text: "It is heavily roasted"},
					{Text: "It is fermented like pu-erh"},
				},
				Explanation: "White tea undergoes minimal processing - the leaves are simply withered and dried without rolling, oxidation, or firing. This preserves the natural antioxidants and delicate flavors.",
			},
			{
				Question: "Where did white tea originate?",
				Options: []*Option{
					{Text: "Japan"},
					{Text: "India"},
					{Text: "Fujian Province, China", Correct: true},
					{Text: "Sri Lanka"},
				},
				Explanation: "White tea originated in Fujian Province, China, specifically in Fuding and Zhenghe counties during the Song Dynasty.",
			},
		},
	},
	{
		Kind:          Yellow,
		Name:          "Yellow Tea",
		Subtitle:      "The Rarest Tea",
		Origin:        "Hunan, Sichuan, and Anhui Provinces, China. Yellow tea is one of the rarest tea types, with production dating back to the Tang Dynasty.",
		FlavorProfile: `Mellow, smooth, and sweet with a unique "yellow" character. Less grassy than green tea, with notes of chestnut and honey.`,
		Processing:    `Similar to green tea but with an additional "sealed yellowing" step. The leaves are wrapped and allowed to yellow slightly, which removes the grassy taste and creates a smoother flavor.`,
		HealthBenefits: []string{
			"Rich in antioxidants",
			"May aid digestion",
			"Contains amino acids for relaxation",
			"Lower caffeine than black tea",
			"May support immune function",
		},
		BrewingTips: "Use water at 175-185°F (80-85°C). Steep for 2-3 minutes. Use 2-3 grams per 8 oz cup. Can be steeped 2-3 times.",
		FunFacts: []string{
			"One of the rarest tea types in the world",
			`The "yellowing" process was discovered by accident`,
			"Junshan Yinzhen is one of China's ten famous teas",
			"Traditionally reserved for Chinese emperors",
		},
		Quizzes: []*Quiz{
			{
				Question: "What makes yellow tea different from green tea?",
				Options: []*Option{
					{Text: "It is fully oxidized"},
					{Text: `It undergoes a "sealed yellowing" step`, Correct: true},
					{Text: "It is fermented"},
					{Text: "It is roasted longer"},
				},
				Explanation: `Yellow tea is processed like green tea but includes an additional "sealed yellowing" step where leaves are wrapped and allowed to yellow slightly, removing the grassy taste.`,
			},
		},
	},
	{
		Kind:          Green,
		Name:          "Green Tea",
		Subtitle:      "Fresh & Antioxidant-Rich",
		Origin:        "China, with origins dating back 5,000 years. Japan developed its own unique green tea culture starting in the 12th century.",
		FlavorProfile: "Fresh, grassy, vegetal, and slightly astringent. Can range from sweet and floral (Chinese) to umami and seaweed-like (Japanese).",
		Processing:    "The leaves are heated soon after picking to prevent oxidation. Chinese green teas are pan-fired or roasted, while Japanese green teas are steamed. This preserves the green color and fresh flavor.",
		HealthBenefits: []string{
			"High in EGCG (epigallocatechin gallate) antioxidants",
			"May boost metabolism and aid weight loss",
			"Supports brain health and cognitive function",
			"May reduce risk of certain cancers",
			"Promotes heart health",
		},
		BrewingTips: "Use water at 160-180°F (70-82°C). Steep for 1-3 minutes. Use 2-3 grams per 8 oz cup. Japanese green teas typically need lower temperatures.",
		FunFacts: []string{
			"Contains the highest concentration of catechins",
			"Matcha is a powdered form of green tea",
			"Sencha is the most popular green tea in Japan",
			"Longjing (Dragon Well) is China's most famous green tea",
		},
		Quizzes: []*Quiz{
			{
				Question: "What is the key difference between Chinese and Japanese green tea processing?",
				Options: []*Option{
					{Text: "Chinese teas are fermented"},
					{Text: "Chinese teas are pan-fired, Japanese are steamed", Correct: true},
					{Text: "Japanese teas are oxidized"},
					{Text: "There is no difference"},
				},
				Explanation: "Chinese green teas are typically pan-fired or roasted to stop oxidation, while Japanese green teas are steamed, which gives them a more vegetal, umami flavor.",
			},
			{
				Question: "What powerful antioxidant is green tea particularly rich in?",
				Options: []*Option{
					{Text: "Vitamin C"},
					{Text: "EGCG (epigallocatechin gallate)", Correct: true},
					{Text: "Caffeine"},
					{Text: "Tannins"},
				},
				Explanation: "Green tea is particularly rich in EGCG (epigallocatechin gallate), a powerful antioxidant that has been studied for its potential health benefits.",
			},
		},
	},
	{
		Kind:          Oolong,
		Name:          "Oolong Tea",
		Subtitle:      "The Perfect Balance",
		Origin:        `Fujian and Guangdong Provinces, China, and Taiwan. Oolong means "black dragon" in Chinese.`,
		FlavorProfile: "Complex and varied, ranging from light and floral (like green tea) to dark and toasty (like black tea). Can have notes of fruit, honey, orchid, or roasted nuts.",
		Processing:    "Partially oxidized (10-80%). The leaves are withered, bruised to start oxidation, then fired to stop oxidation at the desired level. Some oolongs are rolled into tight balls.",
		HealthBenefits: []string{
			"May aid in weight management",
			"Supports heart health",
			"Contains polyphenols for antioxidant benefits",
			"May improve mental alertness",
			"Can help with digestion",
		},
		BrewingTips: "Use water at 185-205°F (85-96°C). Steep for 3-5 minutes. Use 3-4 grams per 8 oz cup. High-quality oolongs can be steeped 5-7 times.",
		FunFacts: []string{
			"Oxidation level can range from 10% to 80%",
			"Tieguanyin (Iron Goddess) is one of the most famous oolongs",
			"Taiwan produces some of the world's finest oolongs",
			`The "gongfu" brewing method is traditional for oolong`,
		},
		Quizzes: []*Quiz{
			{
				Question: `What does "oolong" mean in Chinese?`,
				Options: []*Option{
					{Text: "Green dragon"},
					{Text: "Black dragon", Correct: true},
					{Text: "White dragon"},
					{Text: "Golden dragon"},
				},
				Explanation: `Oolong means "black dragon" in Chinese, named for the dark, twisted appearance of the tea leaves.`,
			},
			{
				Question: "What is the oxidation level range for oolong tea?",
				Options: []*Option{
					{Text: "0-10%"},
					{Text: "10-80%", Correct: true},
					{Text: "80-100%"},
					{Text: "100%"},
				},
				Explanation: "Oolong tea is partially oxidized, with levels ranging from 10% (light oolong, closer to green tea) to 80% (dark oolong, closer to black tea).",
			},
		},
	},
	{
		Kind:          Black,
		Name:          "Black Tea",
		Subtitle:      "Bold & Robust",
		Origin:        `China, with origins in the 17th century. India, Sri Lanka, and Kenya are now major producers. Known as "red tea" in China.`,
		FlavorProfile: "Bold, robust, and full-bodied. Can range from malty and sweet to brisk and astringent. Common notes include honey, caramel, citrus, and spices.",
		Processing:    "Fully oxidized (100%). The leaves are withered, rolled to break cell walls, fully oxidized, then fired to stop oxidation. This creates the dark color and strong flavor.",
		HealthBenefits: []string{
			"Contains theaflavins and thearubigins",
			"May support heart health",
			"Can improve mental alertness",
			"May help reduce stroke risk",
			"Contains fluoride for dental health",
		},
		BrewingTips: "Use water at 200-212°F (93-100°C). Steep for 3-5 minutes. Use 2-3 grams per 8 oz cup. Can be steeped 2-3 times.",
		FunFacts: []string{
			`Called "red tea" (hong cha) in China`,
			"Assam, Darjeeling, and Ceylon are famous black tea regions",
			"English Breakfast is a blend of black teas",
			"Earl Grey is black tea flavored with bergamot oil",
		},
		Quizzes: []*Quiz{
			{
				Question: "What is the oxidation level of black tea?",
				Options: []*Option{
					{Text: "0% (no oxidation)"},
					{Text: "50% (partial oxidation)"},
					{Text: "100% (fully oxidized)", Correct: true},
					{Text: "It varies"},
				},
				Explanation: "Black tea is fully oxidized (100%), which gives it its dark color, bold flavor, and robust character.",
			},
			{
				Question: "What is black tea called in China?",
				Options: []*Option{
					{Text: "Black tea"},
					{Text: "Red tea (hong cha)", Correct: true},
					{Text: "Dark tea"},
					{Text: "Bold tea"},
				},
				Explanation: `In China, black tea is called "red tea" (hong cha) because of the reddish color of the brewed tea liquor.`,
			},
		},
	},
	{
		Kind:          PuErh,
		Name:          "Pu-erh Tea",
		Subtitle:      "Aged & Fermented",
		Origin:        "Yunnan Province, China. Named after Pu'er city. Has been produced for over 1,700 years.",
		FlavorProfile: "Earthy, woody, and complex. Can have notes of mushrooms, forest floor, leather, or dates. Mellow and smooth, with no bitterness when properly aged.",
		Processing:    "Post-fermented tea. Can be raw (sheng) - naturally aged, or ripe (shou) - artificially fermented. The tea is compressed into cakes, bricks, or tuochas and aged.",
		HealthBenefits: []string{
			"May aid in weight loss and digestion",
			"Contains unique probiotics from fermentation",
			"May help lower cholesterol",
			"Supports gut health",
			"May reduce blood sugar levels",
		},
		BrewingTips: "Use water at 200-212°F (93-100°C). Rinse the tea first (quick steep and discard). Steep for 30 seconds to 2 minutes. Use 3-5 grams per 8 oz cup. Can be steeped 10+ times.",
		FunFacts: []string{
			"The only tea that improves with age",
			"Can be aged for decades, even centuries",
			"Vintage pu-erh cakes can be worth thousands of dollars",
			"Traditionally compressed for easier transport on the Tea Horse Road",
		},
		Quizzes: []*Quiz{
			{
				Question: "What makes pu-erh tea unique?",
				Options: []*Option{
					{Text: "It is the only tea that improves with age", Correct: true},
					{Text: "It is the most caffeinated tea"},
					{Text: "It is always green in color"},
					{Text: "It cannot be steeped multiple times"},
				},
				Explanation: "Pu-erh tea is unique because it is post-fermented and actually improves with age, developing more complex flavors over time, sometimes for decades or even centuries.",
			},
			{
				Question: "What are the two main types of pu-erh?",
				Options: []*Option{
					{Text: "Light and dark"},
					{Text: "Raw (sheng) and ripe (shou)", Correct: true},
					{Text: "Young and old"},
					{Text: "Sweet and bitter"},
				},
				Explanation: "Pu-erh comes in two main types: raw (sheng) which is naturally aged, and ripe (shou) which is artificially fermented to speed up the aging process.",
			},
		},
	},
}
