package content

var (
	aboutMe = `I am a recent computer science graduate seeking to leverage my education and programming skills in an exciting role.`

	apianHighlight = `As part of a four-year collaborative research effort, I contributed to a system that uses **event-based vision sensors** to study honeybee populations in real time, tracking bees directly at the hive entrance instead of relying on indirect measures of colony health.
I helped install and operate a neuromorphic sensor that records only where movement occurs, then validated it against conventional cameras by comparing the algorithm's bee counts with human-verified footage. The event-based approach proved far more efficient and precise.
The results point to event-based sensing as a scalable tool for ecological research, precision agriculture, and pollinator health monitoring.`

	labelerHighlight = `At DataAnnotation I evaluated how well large language models solve programming and software engineering problems, reviewing generated solutions across Python, Java, and web technologies.
I analyzed the reasoning behind model responses, found the edge cases where models were inconsistent, and gave structured feedback that helped refine AI-assisted coding tools.`

	puzzleHighlight = `I am an avid puzzlehunt solver and writer. Puzzlehunts give no instructions; solvers have to find the hidden pattern and work out what to do.
I wrote puzzles for the **INTEGIRLS Puzzle Hunt**, which encourages middle and high school girls to explore problem-solving and STEM, and helped organize a location-based hunt across the University of Maryland campus.
Writing and solving hunts sharpened my problem-solving and design skills, and showed me how playful challenges bring people together.`
)

// Default returns the built-in page content. Each call returns a fresh copy.
func Default() *Site {
	return &Site{
		Name:      "Zain Majumder",
		Role:      "Software Developer",
		Location:  "Gaithersburg, MD",
		Tagline:   "I design and build meaningful software.",
		Email:     "majumderzain@gmail.com",
		LinkedIn:  "https://www.linkedin.com/in/zain-majumder/",
		ResumeURL: "/static/resume.pdf",
		About:     aboutMe,
		Nav: []NavItem{
			{ID: "home", Label: "Home"},
			{ID: "about", Label: "About"},
			{ID: "highlights", Label: "Highlights"},
			{ID: "contact", Label: "Contact"},
		},
		Highlights: []Highlight{
			{Title: "Apian Event-Based Sensor Research Project", Description: apianHighlight, Image: "/static/honeybee.jpg"},
			{Title: "AI Data Labeler at DataAnnotation", Description: labelerHighlight, Image: "/static/chatbot-conversation.jpg"},
			{Title: "Puzzle Writing and Community Involvement", Description: puzzleHighlight, Image: "/static/scrabble.jpg"},
		},
		Skills: []string{
			"Artificial intelligence", "Data analytics", "Data viz", "Java", "C",
			"Python", "HTML", "CSS", "JavaScript", "C++", "SQL",
		},
		Glance: []string{
			"Bachelor's Degree in Computer Science from the University of Maryland at College Park",
			"Years of experience with programming languages such as Java and Python",
			"A love for algorithms and creative problem solving",
		},
	}
}
