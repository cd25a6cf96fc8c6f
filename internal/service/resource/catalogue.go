package resource

var catalogue = []Resource{
	{
		ID:          "crisis-maternal-hotline",
		Title:       "National Maternal Mental Health Hotline",
		Description: "Free, confidential support for mothers before, during and after pregnancy. Available 24/7.",
		Category:    CategoryCrisis,
		Phone:       "1-833-852-6262",
		Crisis:      true,
	},
	{
		ID:          "crisis-lifeline",
		Title:       "Suicide and Crisis Lifeline",
		Description: "Call or text 988 to reach trained crisis counselors, any time of day.",
		Category:    CategoryCrisis,
		Phone:       "988",
		Crisis:      true,
	},
	{
		ID:          "counseling-psi-directory",
		Title:       "Postpartum Support International Provider Directory",
		Description: "Find therapists and psychiatrists specializing in perinatal mental health near you.",
		Category:    CategoryCounseling,
		URL:         "https://www.postpartum.net/get-help/provider-directory/",
	},
	{
		ID:          "counseling-teletherapy",
		Title:       "Teletherapy for New Parents",
		Description: "Video counseling sessions you can attend from home, including evenings and weekends.",
		Category:    CategoryCounseling,
		URL:         "https://www.postpartum.net/get-help/psi-online-support-meetings/",
	},
	{
		ID:          "peer-support-circle",
		Title:       "New Mothers Peer Support Circle",
		Description: "Weekly online group meetings with other new mothers, facilitated by trained peer volunteers.",
		Category:    CategoryPeerSupport,
		URL:         "https://www.postpartum.net/get-help/psi-online-support-meetings/",
	},
	{
		ID:          "peer-warmline",
		Title:       "PSI HelpLine",
		Description: "Leave a message any time and a volunteer will call you back with local support options.",
		Category:    CategoryPeerSupport,
		Phone:       "1-800-944-4773",
	},
	{
		ID:          "selfcare-sleep",
		Title:       "Sleep Strategies for New Parents",
		Description: "Practical guidance for protecting rest while caring for a newborn.",
		Category:    CategorySelfCare,
		URL:         "https://www.nhs.uk/conditions/baby/support-and-services/sleep-and-tiredness-after-having-a-baby/",
	},
	{
		ID:          "selfcare-mood-basics",
		Title:       "Mood Basics: Movement, Food and Daylight",
		Description: "Small daily habits that support mood in the postpartum period.",
		Category:    CategorySelfCare,
		URL:         "https://www.womenshealth.gov/mental-health/mental-health-conditions/postpartum-depression",
	},
	{
		ID:          "medical-provider-talk",
		Title:       "Talking to Your Doctor or Midwife",
		Description: "How to raise mood concerns at a checkup, and what screening and treatment to expect.",
		Category:    CategoryMedical,
		URL:         "https://www.acog.org/womens-health/faqs/postpartum-depression",
	},
}
