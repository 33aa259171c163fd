package store

import "cx-workbench-go/internal/types"

func nps(n int) *int { return &n }

// Default returns the built-in demo dataset used when no DATASET_PATH or
// DATASET_URL is configured.
func Default() *Store {
	records := []types.Interaction{
		{
			ID: "1", Kind: types.KindCall, Category: "Service speed",
			Sentiment: types.SentimentNegative, Date: "Nov 20, 2024", Channel: "Phone",
			Topic: "Drive-Thru", NPS: nps(3), Duration: "6:12",
			Attributes: &types.Attributes{LoyaltyTier: "Gold Member", Emotion: "Frustration"},
			Transcript: []types.TranscriptEntry{
				{Timestamp: "00:12", Speaker: "Agent (Maya Collins)", Role: "agent", Text: "Thanks for calling Nom Nom Express, how can I help you today?"},
				{Timestamp: "00:19", Speaker: "Customer (Dana Whitfield)", Role: "customer", Text: "I just sat in your drive-thru for almost twenty minutes. The wait is getting worse every week."},
				{Timestamp: "00:41", Speaker: "Agent (Maya Collins)", Role: "agent", Text: "I'm sorry about the wait. Was your order correct when you received it?"},
				{Timestamp: "00:52", Speaker: "Customer (Dana Whitfield)", Role: "customer", Text: "The order was fine, but twenty minutes for two combos is not."},
			},
		},
		{
			ID: "2", Kind: types.KindSurvey, Category: "Order accuracy",
			Sentiment: types.SentimentPositive, Date: "Jan 29, 2026", Channel: "App",
			Topic: "Speed", NPS: nps(10),
			Attributes: &types.Attributes{OrderItem: "Mobile Pickup"},
			Text:       "Super fast! I barely pulled into the Mobile Pickup spot and the runner was already coming out with my bag. The food was piping hot.",
		},
		{
			ID: "3", Kind: types.KindSurvey, Category: "Billing",
			Sentiment: types.SentimentNegative, Date: "Oct 1, 2025", Channel: "App",
			Topic: "Coupons", NPS: nps(4),
			Attributes: &types.Attributes{CouponUsed: true},
			Text:       "I tried to use my Buy One Get One coupon in the app, and it kept saying Invalid Code even though it doesn't expire until next week. Ended up paying full price.",
		},
		{
			ID: "4", Kind: types.KindCall, Category: "Order accuracy",
			Sentiment: types.SentimentNegative, Date: "Oct 1, 2025", Channel: "Phone",
			Topic: "Missing Item", NPS: nps(2), Duration: "8:47",
			Attributes: &types.Attributes{OrderItem: "Chicken Fiesta Bowl", Emotion: "Frustrated"},
			Transcript: []types.TranscriptEntry{
				{Timestamp: "00:45", Speaker: "Agent (Bree Anderson)", Role: "agent", Text: "Thank you for waiting. My name is Bree. Can I get your order number?"},
				{Timestamp: "00:55", Speaker: "Customer (Jon Kern)", Role: "customer", Text: "Yes, the order number is NNE-199-B7. I went through the drive-thru and my order was missing an item. I was charged for it, but it's not in the bag."},
				{Timestamp: "01:18", Speaker: "Agent (Bree Anderson)", Role: "agent", Text: "Okay. Which item was missing?"},
				{Timestamp: "01:18", Speaker: "Customer (Jon Kern)", Role: "customer", Text: "The Chicken Fiesta Bowl is completely missing. I was charged $9 for it! And the large soda I got is completely flat, no bubbles at all."},
			},
		},
		{
			ID: "5", Kind: types.KindReview, Category: "Service speed",
			Sentiment: types.SentimentPositive, Date: "Mar 3, 2025", Channel: "Google Reviews",
			Topic: "Speed", NPS: nps(9),
			Text: "Service speed is back to what it used to be. For a while this location was struggling, but today I was through the drive-thru in under 4 minutes.",
		},
		{
			ID: "6", Kind: types.KindSocial, Category: "Service speed",
			Sentiment: types.SentimentNegative, Date: "Mar 4, 2025", Channel: "Social Media",
			Topic: "Drive-Thru",
			Text:  "Usually love this place, but the drive-thru tonight was a disaster. I sat in the Express lane for 25 minutes. The wait was unreal.",
		},
		{
			ID: "7", Kind: types.KindReview, Category: "Product quality",
			Sentiment: types.SentimentPositive, Date: "Feb 12, 2025", Channel: "Google Reviews",
			Topic: "New Items", NPS: nps(8),
			Text: "The new Zesty Truffle Fries are actually really good! Crispy, well seasoned, and the portion is generous.",
		},
		{
			ID: "8", Kind: types.KindSurvey, Category: "Billing",
			Sentiment: types.SentimentNeutral, Date: "Feb 20, 2025", Channel: "App",
			Topic: "Coupons", NPS: nps(7),
			Attributes: &types.Attributes{CouponUsed: true, LoyaltyTier: "Silver Member"},
			Text:       "The coupon applied this time, but I had to restart the app twice before the discount showed up at checkout.",
		},
		{
			ID: "9", Kind: types.KindSocial, Category: "Product quality",
			Sentiment: types.SentimentNeutral, Date: "Jan 18, 2025", Channel: "Social Media",
			Topic: "New Items",
			Text:  "Tried the limited menu today. The sliders were fine, nothing special. Curious what they roll out next month.",
		},
		{
			ID: "10", Kind: types.KindCall, Category: "Mobile app",
			Sentiment: types.SentimentNegative, Date: "Oct 1, 2025", Channel: "Phone",
			Topic: "Login", Duration: "11:02",
			Transcript: []types.TranscriptEntry{
				{Timestamp: "00:30", Speaker: "Customer (Priya Raman)", Role: "customer", Text: "The login button is greyed out since the update. I'm on iOS 17 and I can't get to my rewards at all."},
				{Timestamp: "02:15", Speaker: "Agent (Tom Delaney)", Role: "agent", Text: "Let's check which app version you have installed, then walk through your device settings together."},
				{Timestamp: "05:40", Speaker: "Customer (Priya Raman)", Role: "customer", Text: "Okay, reinstalling worked. It would be nice if the app just told me that."},
			},
		},
		{
			ID: "11", Kind: types.KindReview, Category: "Mobile app",
			Sentiment: types.SentimentNegative, Date: "Dec 2, 2024", Channel: "Google Reviews",
			Topic: "Login", NPS: nps(1),
			Text: "App logged me out mid-order and lost my cart. Third time this month. Fix your login flow before adding more menu animations.",
		},
		{
			ID: "12", Kind: types.KindSurvey, Category: "Staff friendliness",
			Sentiment: types.SentimentPositive, Date: "Jan 5, 2025", Channel: "App",
			Topic: "Service", NPS: nps(10),
			Attributes: &types.Attributes{LoyaltyTier: "Gold Member"},
			Text:       "The crew at the window remembered my usual order and threw in extra napkins without me asking. Small thing, big difference.",
		},
	}

	ctx := Context{
		Chapters: map[string][]types.Chapter{
			"4": {
				{Timestamp: "00:45", Title: "Issue identification", Summary: "Customer states order is 'completely wrong,' citing a Missing Item (Chicken Fiesta Bowl) and a Product Quality issue (Flat Soda)."},
				{Timestamp: "01:05", Title: "Issue identification", Summary: "Agent fails to apologize, refuses ownership and uses an unprofessional tone in response to customer frustration."},
				{Timestamp: "01:28", Title: "Resolution Barrier", Summary: "Agent cites policy to deny compensation for the low-value item (soda), increasing Customer Effort and forcing customer to re-escalate the issue."},
			},
			"10": {
				{Timestamp: "00:30", Title: "Technical issue", Summary: "Customer reports login button greyed out on iOS 17; cannot access rewards."},
				{Timestamp: "02:15", Title: "Troubleshooting", Summary: "Agent walks through app version and device settings."},
			},
		},
		Topics: map[string][]types.TopicGroup{
			"1": {
				{Model: "Topic model: Restaurants", Heading: "Order Fulfillment", Tags: []types.TopicTag{{Label: "Drive-Thru Wait", Count: 3}, {Label: "Service Speed", Count: 3}}},
				{Model: "Customer Emotion", Tags: []types.TopicTag{{Label: "Frustration", Count: 3}}},
			},
			"3": {
				{Model: "Topic model: Billing", Heading: "Coupons & Promotions", Tags: []types.TopicTag{{Label: "App Error", Count: 3}, {Label: "Billing", Count: 3}}},
			},
			"4": {
				{Model: "Topic model: Restaurants", Heading: "Order Fulfillment", Tags: []types.TopicTag{{Label: "Missing/Incorrect Order", Count: 3}, {Label: "Product Quality", Count: 3}}},
				{Model: "Customer Emotion", Tags: []types.TopicTag{{Label: "Frustration", Count: 3}, {Label: "Loyalty", Count: 3}}},
				{Model: "Topic model: Nom Nom Express Custom", Heading: "Operational Root Cause", Tags: []types.TopicTag{{Label: "Missing Item: Hot Kitchen", Count: 3}, {Label: "Product Quality", Count: 3}, {Label: "Channel Error: Drive-Thru", Count: 3}}},
			},
		},
		Metadata: map[string]types.Metadata{
			"1":  {Emotion: "Very negative", CSAT: "2", OrderID: "NNE-126-B7", UserID: "FE123", ResponseID: "TTDC-4001", DateCreated: "6:45 PM, Nov 20, 2024", OrderDate: "1:02 PM, Nov 24, 2024"},
			"3":  {Emotion: "Negative", CSAT: "3", ResponseID: "SURVEY-38223", DateCreated: "9:03 PM Oct 1, 2025"},
			"4":  {Emotion: "Frustrated", CSAT: "Very low: 2", OrderID: "NNE-199-B7", ResponseID: "CALL-4217", DateCreated: "9:03 PM Oct 1, 2025"},
			"10": {Emotion: "Negative", ResponseID: "CALL-4217", DateCreated: "9:03 PM Oct 1, 2025"},
		},
	}

	s, err := New(records, ctx)
	if err != nil {
		// the seed is compiled in; a validation failure here is a programming error
		panic(err)
	}
	return s
}
