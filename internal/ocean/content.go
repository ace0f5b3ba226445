package ocean

// KPIs returns the dashboard headline cards.
func KPIs() []KPI {
	return []KPI{
		{Title: "Average Temperature", Value: "16.3°C", Change: "+2.4%", Color: "from-orange-500 to-red-500"},
		{Title: "Average Salinity", Value: "35.2 PSU", Change: "-0.1%", Color: "from-blue-500 to-cyan-500"},
		{Title: "Active Floats", Value: "3,847", Change: "+12", Color: "from-green-500 to-emerald-500"},
		{Title: "Data Points Today", Value: "24.7K", Change: "+8.3%", Color: "from-purple-500 to-pink-500"},
	}
}

// RecentActivity returns the dashboard's activity feed.
func RecentActivity() []Activity {
	return []Activity{
		{FloatID: "ARGO_5904623", Location: "North Atlantic", Status: "Data Received", Time: "2 minutes ago"},
		{FloatID: "ARGO_5904587", Location: "Pacific Ocean", Status: "Surfaced", Time: "15 minutes ago"},
		{FloatID: "ARGO_5904591", Location: "Indian Ocean", Status: "Diving", Time: "1 hour ago"},
	}
}

// ProfileStats returns the three summary cards under the insights chart.
func ProfileStats() []Stat {
	return []Stat{
		{Title: "Temperature Range", Value: "1.9°C - 18.5°C", Description: "Surface to 2000m depth", Color: "from-red-500 to-orange-500"},
		{Title: "Salinity Variation", Value: "34.6 - 35.8 PSU", Description: "Practical Salinity Units", Color: "from-blue-500 to-cyan-500"},
		{Title: "Max Pressure", Value: "202.6 dbar", Description: "At 2000m depth", Color: "from-purple-500 to-pink-500"},
	}
}

// HeroStats returns the landing page headline numbers.
func HeroStats() []Stat {
	return []Stat{
		{Value: "3,800+", Label: "Active ARGO Floats"},
		{Value: "250M+", Label: "Data Points Collected"},
		{Value: "120+", Label: "Countries Involved"},
	}
}

// LandingFeatures returns the landing page feature preview cards.
func LandingFeatures() []Feature {
	return []Feature{
		{Icon: "🤖", Title: "AI-Powered Insights", Description: "Advanced machine learning algorithms analyze patterns in ocean temperature, salinity, and pressure data."},
		{Icon: "🗺️", Title: "Interactive Maps", Description: "Visualize ARGO float locations and data in real-time with our interactive mapping system."},
		{Icon: "📊", Title: "Data Export", Description: "Export findings in multiple formats including CSV and NetCDF for further research."},
	}
}

// AboutFeatures returns the about page feature grid.
func AboutFeatures() []Feature {
	return []Feature{
		{Icon: "beaker", Title: "Scientific Accuracy", Description: "All data is sourced directly from the ARGO float network, ensuring scientific accuracy and reliability."},
		{Icon: "globe", Title: "Global Coverage", Description: "Access to worldwide ocean data from over 3,800 active ARGO floats across all major ocean basins."},
		{Icon: "chart", Title: "Advanced Analytics", Description: "AI-powered insights and pattern recognition to help researchers discover new oceanographic phenomena."},
		{Icon: "users", Title: "Community Driven", Description: "Built for researchers, by researchers, with continuous feedback from the marine science community."},
	}
}

// Timeline returns the about page project milestones.
func Timeline() []Milestone {
	return []Milestone{
		{Year: "2023", Event: "Project Inception", Description: "OceanIQ project started with the goal of democratizing ocean data access"},
		{Year: "2023", Event: "AI Integration", Description: "Implemented machine learning algorithms for pattern recognition in ocean data"},
		{Year: "2024", Event: "Platform Launch", Description: "Beta version launched with basic ARGO float data visualization"},
		{Year: "2024", Event: "Enhanced Features", Description: "Added interactive maps, chatbot, and advanced analytics capabilities"},
	}
}

// Team returns the about page team cards.
func Team() []TeamMember {
	return []TeamMember{
		{Name: "Dr. Sarah Ocean", Role: "Marine Biologist", Icon: "🌊"},
		{Name: "Alex Chen", Role: "AI Engineer", Icon: "🤖"},
		{Name: "Maria Rodriguez", Role: "Data Scientist", Icon: "📊"},
		{Name: "James Park", Role: "Full-Stack Developer", Icon: "💻"},
	}
}

// PlatformStats returns the about page usage figures.
func PlatformStats() []Stat {
	return []Stat{
		{Value: "10,000+", Label: "Data Visualizations Created"},
		{Value: "500+", Label: "Research Papers Supported"},
		{Value: "50+", Label: "Universities Using Platform"},
		{Value: "99.9%", Label: "Platform Uptime"},
	}
}
