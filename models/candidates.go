package models

// DefaultCandidates seeds the swipe feed on fresh deployments where the
// profiles table has no other users yet. MatchPercentage here is a fixed
// demo value; real candidates get a computed score instead.
var DefaultCandidates = []UserProfile{
	{
		UserID:          "seed-1",
		Name:            "Riya",
		Bio:             "Full-stack developer passionate about AI and machine learning. Love building innovative solutions!",
		Skills:          []string{"Python", "React", "Machine Learning", "Django"},
		Experience:      ExperienceIntermediate,
		Goals:           []string{"Win", "Learn"},
		MatchPercentage: 92,
		Image:           "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		UserID:          "seed-2",
		Name:            "Akshay",
		Bio:             "UI/UX designer with a knack for creating beautiful and functional interfaces. Always ready for a challenge!",
		Skills:          []string{"UI/UX", "Figma", "JavaScript", "CSS"},
		Experience:      ExperienceAdvanced,
		Goals:           []string{"Chill", "Network"},
		MatchPercentage: 87,
		Image:           "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		UserID:          "seed-3",
		Name:            "Aditi",
		Bio:             "Data scientist and ML engineer. Looking to build the next big thing in healthcare tech!",
		Skills:          []string{"Python", "TensorFlow", "Data Science", "SQL"},
		Experience:      ExperienceExpert,
		Goals:           []string{"Win", "Build Portfolio"},
		MatchPercentage: 89,
		Image:           "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		UserID:          "seed-4",
		Name:            "Aditya",
		Bio:             "Backend developer specializing in distributed systems. Love working on scalable solutions.",
		Skills:          []string{"Java", "Node.js", "AWS", "Docker"},
		Experience:      ExperienceAdvanced,
		Goals:           []string{"Just Learn", "Win"},
		MatchPercentage: 94,
		Image:           "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		UserID:          "seed-5",
		Name:            "Ananya",
		Bio:             "Frontend developer with a passion for creating amazing user experiences. Flutter enthusiast!",
		Skills:          []string{"Flutter", "Dart", "React", "TypeScript"},
		Experience:      ExperienceIntermediate,
		Goals:           []string{"Chill", "Network"},
		MatchPercentage: 85,
		Image:           "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
}
