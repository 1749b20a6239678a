package itembank

// items is the canonical Mini-IPIP6 item table, Sibley (2012) Table 2.
// alpha is the discrimination parameter; beta holds the six ascending
// category thresholds for the 7-point Likert scale.
var items = []Item{
	// Extraversion
	{ID: 1, Trait: Extraversion, ReverseKeyed: false, Alpha: 1.07,
		Beta:   [6]float64{-1.85, -1.04, -0.21, 0.89, 1.98, 2.76},
		TextEN: "Am the life of the party.", TextKR: "나는 파티의 분위기 메이커이다."},
	{ID: 7, Trait: Extraversion, ReverseKeyed: true, Alpha: 0.84,
		Beta:   [6]float64{-2.82, -1.67, -0.80, 0.10, 0.86, 1.91},
		TextEN: "Don't talk a lot.", TextKR: "나는 말을 많이 하지 않는다."},
	{ID: 19, Trait: Extraversion, ReverseKeyed: true, Alpha: 1.00,
		Beta:   [6]float64{-2.51, -1.32, -0.49, 0.45, 1.23, 2.44},
		TextEN: "Keep in the background.", TextKR: "나는 뒤에서 조용히 있는 편이다."},
	{ID: 23, Trait: Extraversion, ReverseKeyed: false, Alpha: 0.92,
		Beta:   [6]float64{-2.25, -1.27, -0.54, 0.24, 0.97, 1.96},
		TextEN: "Talk to a lot of different people at parties.", TextKR: "나는 파티에서 다양한 사람들과 대화한다."},

	// Agreeableness
	{ID: 2, Trait: Agreeableness, ReverseKeyed: false, Alpha: 1.46,
		Beta:   [6]float64{-3.19, -2.51, -1.86, -1.19, -0.28, 0.99},
		TextEN: "Sympathize with others' feelings.", TextKR: "나는 다른 사람들의 감정에 공감한다."},
	{ID: 8, Trait: Agreeableness, ReverseKeyed: true, Alpha: 0.66,
		Beta:   [6]float64{-3.74, -2.51, -1.59, -0.76, 0.22, 1.76},
		TextEN: "Am not interested in other people's problems.", TextKR: "나는 다른 사람들의 문제에 관심이 없다."},
	{ID: 14, Trait: Agreeableness, ReverseKeyed: false, Alpha: 1.12,
		Beta:   [6]float64{-3.15, -2.36, -1.70, -0.92, 0.03, 1.37},
		TextEN: "Feel others' emotions.", TextKR: "나는 다른 사람들의 감정을 느낀다."},
	{ID: 20, Trait: Agreeableness, ReverseKeyed: true, Alpha: 0.81,
		Beta:   [6]float64{-3.77, -2.69, -1.94, -1.19, -0.28, 1.25},
		TextEN: "Am not really interested in others.", TextKR: "나는 다른 사람들에게 별로 관심이 없다."},

	// Conscientiousness
	{ID: 3, Trait: Conscientiousness, ReverseKeyed: false, Alpha: 0.90,
		Beta:   [6]float64{-3.39, -2.13, -1.18, -0.27, 0.57, 1.64},
		TextEN: "Get chores done right away.", TextKR: "나는 집안일을 바로바로 처리한다."},
	{ID: 10, Trait: Conscientiousness, ReverseKeyed: false, Alpha: 0.85,
		Beta:   [6]float64{-3.49, -2.72, -2.02, -1.06, -0.20, 1.12},
		TextEN: "Like order.", TextKR: "나는 질서를 좋아한다."},
	{ID: 11, Trait: Conscientiousness, ReverseKeyed: true, Alpha: 0.77,
		Beta:   [6]float64{-4.21, -2.93, -2.05, -1.07, -0.18, 1.38},
		TextEN: "Make a mess of things.", TextKR: "나는 일을 엉망으로 만든다."},
	{ID: 22, Trait: Conscientiousness, ReverseKeyed: true, Alpha: 0.94,
		Beta:   [6]float64{-2.63, -1.73, -1.17, -0.64, -0.09, 1.11},
		TextEN: "Often forget to put things back in their proper place.", TextKR: "나는 물건을 제자리에 돌려놓는 것을 자주 잊어버린다."},

	// Neuroticism
	{ID: 4, Trait: Neuroticism, ReverseKeyed: false, Alpha: 1.13,
		Beta:   [6]float64{-1.32, -0.23, 0.36, 1.04, 1.72, 2.53},
		TextEN: "Have frequent mood swings.", TextKR: "나는 기분 변화가 자주 있다."},
	{ID: 15, Trait: Neuroticism, ReverseKeyed: true, Alpha: 0.77,
		Beta:   [6]float64{-2.24, -0.70, 0.38, 1.48, 2.57, 3.92},
		TextEN: "Am relaxed most of the time.", TextKR: "나는 대부분의 시간 동안 편안하다."},
	{ID: 16, Trait: Neuroticism, ReverseKeyed: false, Alpha: 0.90,
		Beta:   [6]float64{-2.15, -0.76, 0.05, 0.89, 1.72, 2.80},
		TextEN: "Get upset easily.", TextKR: "나는 쉽게 화가 난다."},
	{ID: 17, Trait: Neuroticism, ReverseKeyed: true, Alpha: 0.65,
		Beta:   [6]float64{-2.82, -1.01, -0.19, 0.76, 1.80, 3.15},
		TextEN: "Seldom feel blue.", TextKR: "나는 거의 우울하지 않다."},

	// Openness to Experience
	{ID: 5, Trait: Openness, ReverseKeyed: false, Alpha: 0.54,
		Beta:   [6]float64{-4.22, -2.68, -1.52, -0.21, 0.94, 2.47},
		TextEN: "Have a vivid imagination.", TextKR: "나는 생생한 상상력을 가지고 있다."},
	{ID: 9, Trait: Openness, ReverseKeyed: true, Alpha: 1.10,
		Beta:   [6]float64{-2.70, -1.72, -1.00, -0.17, 0.47, 1.61},
		TextEN: "Have difficulty understanding abstract ideas.", TextKR: "나는 추상적인 아이디어를 이해하는 데 어려움이 있다."},
	{ID: 13, Trait: Openness, ReverseKeyed: true, Alpha: 0.79,
		Beta:   [6]float64{-3.45, -2.35, -1.56, -0.85, -0.11, 1.13},
		TextEN: "Do not have a good imagination.", TextKR: "나는 상상력이 좋지 않다."},
	{ID: 21, Trait: Openness, ReverseKeyed: true, Alpha: 1.24,
		Beta:   [6]float64{-2.57, -1.71, -1.12, -0.29, 0.41, 1.43},
		TextEN: "Am not interested in abstract ideas.", TextKR: "나는 추상적인 아이디어에 관심이 없다."},

	// Honesty-Humility
	{ID: 6, Trait: HonestyHumility, ReverseKeyed: true, Alpha: 0.91,
		Beta:   [6]float64{-3.43, -2.67, -1.89, -1.10, -0.42, 0.71},
		TextEN: "Feel entitled to more of everything.", TextKR: "나는 모든 것에서 더 많은 것을 받을 자격이 있다고 느낀다."},
	{ID: 12, Trait: HonestyHumility, ReverseKeyed: true, Alpha: 1.17,
		Beta:   [6]float64{-2.32, -1.69, -1.08, -0.33, 0.17, 0.99},
		TextEN: "Deserve more things in life.", TextKR: "나는 인생에서 더 많은 것을 받을 자격이 있다."},
	{ID: 18, Trait: HonestyHumility, ReverseKeyed: true, Alpha: 1.47,
		Beta:   [6]float64{-1.92, -1.42, -0.97, -0.52, -0.16, 0.48},
		TextEN: "Would like to be seen driving around in a very expensive car.", TextKR: "나는 매우 비싼 차를 운전하는 모습을 보여주고 싶다."},
	{ID: 24, Trait: HonestyHumility, ReverseKeyed: true, Alpha: 1.16,
		Beta:   [6]float64{-2.08, -1.30, -0.71, -0.12, 0.31, 1.10},
		TextEN: "Would get a lot of pleasure from owning expensive luxury goods.", TextKR: "나는 비싼 명품을 소유하는 것에서 큰 즐거움을 얻을 것이다."},
}
