package projects

// LIRR capital program projects.
// Source: MTA 2025-2029 Capital Plan and historical data.

func millions(v float64) *float64 { return &v }
func year(v int) *int             { return &v }

var lirrProjects = []Project{
	// Major completed projects
	{
		ID:             "gcm",
		Name:           "Grand Central Madison",
		Category:       CategoryExpansion,
		Description:    "New 8-track terminal beneath Grand Central Terminal providing direct LIRR service to Manhattan's East Side, reducing travel times and increasing capacity.",
		EstimatedCost:  11100,
		ActualCost:     millions(11100),
		StartYear:      2007,
		CompletionYear: year(2023),
		Status:         StatusCompleted,
		Location:       "Manhattan - Grand Central Terminal",
		KeyComponents: []string{
			"8 new underground tracks",
			"4 new platforms",
			"New East Side Access tunnels",
			"Harold Interlocking improvements",
			"Ventilation facilities",
		},
	},
	{
		ID:             "mle",
		Name:           "Main Line Expansion (Third Track)",
		Category:       CategoryCapacity,
		Description:    "Addition of a third track on the LIRR Main Line between Floral Park and Hicksville, enabling bi-directional service and eliminating 7 grade crossings.",
		EstimatedCost:  2600,
		ActualCost:     millions(2600),
		StartYear:      2018,
		CompletionYear: year(2022),
		Status:         StatusCompleted,
		Location:       "Floral Park to Hicksville",
		KeyComponents: []string{
			"9.8 miles of new third track",
			"7 grade crossing eliminations",
			"5 new parking structures",
			"Station improvements at 5 stations",
			"New Belmont Park station",
		},
	},

	// Rolling stock
	{
		ID:             "m9-cars",
		Name:           "M9 Electric Multiple Unit Cars",
		Category:       CategoryRollingStock,
		Description:    "Purchase of 202 new M9 electric railcars from Kawasaki to modernize the LIRR fleet and replace aging M3 cars from the 1980s.",
		EstimatedCost:  1800,
		ActualCost:     millions(1800),
		StartYear:      2013,
		CompletionYear: year(2021),
		Status:         StatusCompleted,
		Location:       "System-wide",
		KeyComponents: []string{
			"202 new M9 cars",
			"Open gangway design",
			"Enhanced passenger amenities",
			"Improved accessibility",
			"Modern HVAC systems",
		},
	},
	{
		ID:             "m9a-cars",
		Name:           "M9A Electric Railcars",
		Category:       CategoryRollingStock,
		Description:    "Additional order of M9A electric railcars to continue fleet modernization and increase service capacity for Grand Central Madison.",
		EstimatedCost:  1200,
		StartYear:      2019,
		CompletionYear: year(2025),
		Status:         StatusInProgress,
		Location:       "System-wide",
		KeyComponents: []string{
			"182 new M9A cars",
			"Enhanced reliability features",
			"Digital displays",
			"USB charging ports",
			"Improved accessibility",
		},
	},
	{
		ID:             "dual-mode-locos",
		Name:           "Dual-Mode Locomotive Replacement",
		Category:       CategoryRollingStock,
		Description:    "Purchase of up to 44 new dual-mode locomotives to replace aging diesel fleet that has exceeded useful life.",
		EstimatedCost:  950,
		StartYear:      2024,
		CompletionYear: year(2029),
		Status:         StatusInProgress,
		Location:       "Non-electrified branches",
		KeyComponents: []string{
			"44 dual-mode locomotives",
			"Electric and diesel operation",
			"Cleaner emissions",
			"Improved reliability",
			"Enhanced passenger comfort",
		},
	},
	{
		ID:             "coach-replacement",
		Name:           "Passenger Coach Replacement",
		Category:       CategoryRollingStock,
		Description:    "Replacement of aging bi-level coaches used on diesel branches with modern equipment.",
		EstimatedCost:  450,
		StartYear:      2025,
		CompletionYear: year(2030),
		Status:         StatusPlanned,
		Location:       "Diesel branches",
		KeyComponents: []string{
			"New bi-level coaches",
			"Modern amenities",
			"ADA compliance upgrades",
			"Enhanced HVAC",
			"Improved seating",
		},
	},

	// Power infrastructure
	{
		ID:             "substation-renewal",
		Name:           "Traction Power Substation Program",
		Category:       CategoryPowerInfrastructure,
		Description:    "Replacement and renewal of 16 traction power substations that convert grid electricity to third rail power.",
		EstimatedCost:  800,
		StartYear:      2024,
		CompletionYear: year(2029),
		Status:         StatusInProgress,
		Location:       "System-wide",
		KeyComponents: []string{
			"16 substation replacements",
			"Increased power capacity",
			"Modern switchgear",
			"Enhanced reliability",
			"Redundancy improvements",
		},
	},
	{
		ID:             "third-rail-renewal",
		Name:           "Third Rail Renewal Program",
		Category:       CategoryPowerInfrastructure,
		Description:    "Systematic replacement of aging third rail sections to ensure reliable power delivery across the electrified network.",
		EstimatedCost:  350,
		StartYear:      2023,
		CompletionYear: year(2028),
		Status:         StatusInProgress,
		Location:       "Electrified territory",
		KeyComponents: []string{
			"Third rail replacement",
			"Contact rail upgrades",
			"Protection board renewal",
			"Anchor replacements",
			"Improved drainage",
		},
	},

	// Station accessibility
	{
		ID:             "ada-bellerose",
		Name:           "Bellerose Station Accessibility",
		Category:       CategoryAccessibility,
		Description:    "Making Bellerose station fully ADA accessible with new elevators, ramps, and platform improvements.",
		EstimatedCost:  85,
		StartYear:      2025,
		CompletionYear: year(2027),
		Status:         StatusPlanned,
		Location:       "Bellerose, Queens",
		KeyComponents: []string{
			"New elevators",
			"Platform edge improvements",
			"Tactile warning strips",
			"Accessible pathways",
			"Station rehabilitation",
		},
	},
	{
		ID:             "ada-douglaston",
		Name:           "Douglaston Station Accessibility",
		Category:       CategoryAccessibility,
		Description:    "Full accessibility upgrades at Douglaston station including elevators and platform modifications.",
		EstimatedCost:  90,
		StartYear:      2025,
		CompletionYear: year(2027),
		Status:         StatusPlanned,
		Location:       "Douglaston, Queens",
		KeyComponents: []string{
			"New elevators",
			"Platform modifications",
			"ADA-compliant restrooms",
			"Wayfinding improvements",
			"Lighting upgrades",
		},
	},
	{
		ID:             "ada-cold-spring",
		Name:           "Cold Spring Harbor Station Accessibility",
		Category:       CategoryAccessibility,
		Description:    "Accessibility improvements at Cold Spring Harbor station to achieve ADA compliance.",
		EstimatedCost:  75,
		StartYear:      2026,
		CompletionYear: year(2028),
		Status:         StatusPlanned,
		Location:       "Cold Spring Harbor, Suffolk",
		KeyComponents: []string{
			"Elevator installation",
			"Platform edge work",
			"Accessible parking",
			"Path of travel improvements",
			"Signage upgrades",
		},
	},

	// Bridges
	{
		ID:             "webster-ave-bridge",
		Name:           "Webster Avenue Bridge Replacement",
		Category:       CategoryBridges,
		Description:    "Complete reconstruction of the Webster Avenue Bridge in Manhasset, which has reached the end of its structural lifespan.",
		EstimatedCost:  120,
		StartYear:      2024,
		CompletionYear: year(2026),
		Status:         StatusInProgress,
		Location:       "Manhasset, Nassau",
		KeyComponents: []string{
			"Bridge replacement",
			"Roadway reconstruction",
			"Sidewalk improvements",
			"Drainage upgrades",
			"Utility relocation",
		},
	},
	{
		ID:             "bridge-program",
		Name:           "Systemwide Bridge Rehabilitation",
		Category:       CategoryBridges,
		Description:    "Ongoing program to inspect, repair, and rehabilitate bridges throughout the LIRR network.",
		EstimatedCost:  400,
		StartYear:      2020,
		CompletionYear: year(2029),
		Status:         StatusInProgress,
		Location:       "System-wide",
		KeyComponents: []string{
			"Steel repairs",
			"Concrete rehabilitation",
			"Deck replacements",
			"Bearing replacements",
			"Protective coatings",
		},
	},

	// Signals and communications
	{
		ID:             "signal-modernization",
		Name:           "Signal System Modernization",
		Category:       CategorySignals,
		Description:    "Replacement of legacy signal systems with modern technology to improve safety and capacity.",
		EstimatedCost:  650,
		StartYear:      2023,
		CompletionYear: year(2030),
		Status:         StatusInProgress,
		Location:       "System-wide",
		KeyComponents: []string{
			"Modern signal heads",
			"Interlocking upgrades",
			"Centralized control",
			"Communication systems",
			"Positive Train Control integration",
		},
	},
	{
		ID:             "ptc-implementation",
		Name:           "Positive Train Control",
		Category:       CategorySignals,
		Description:    "Implementation of federally mandated Positive Train Control safety system across all LIRR territory.",
		EstimatedCost:  500,
		ActualCost:     millions(500),
		StartYear:      2015,
		CompletionYear: year(2020),
		Status:         StatusCompleted,
		Location:       "System-wide",
		KeyComponents: []string{
			"Onboard computers",
			"Wayside systems",
			"Back office servers",
			"Communication network",
			"GPS integration",
		},
	},

	// Electrification studies
	{
		ID:            "mainline-electrification",
		Name:          "Main Line Electrification to Yaphank",
		Category:      CategoryElectrification,
		Description:   "Study and potential implementation of electrification extending the Main Line electric territory from Ronkonkoma to Yaphank.",
		EstimatedCost: 1500,
		StartYear:     2025,
		Status:        StatusUnderStudy,
		Location:      "Ronkonkoma to Yaphank",
		KeyComponents: []string{
			"Catenary or third rail extension",
			"New substations",
			"Station modifications",
			"Environmental review",
			"Community engagement",
		},
	},
	{
		ID:            "port-jeff-electrification",
		Name:          "Port Jefferson Branch Electrification",
		Category:      CategoryElectrification,
		Description:   "Study of potential electrification of the Port Jefferson Branch from Huntington to Port Jefferson.",
		EstimatedCost: 1200,
		StartYear:     2024,
		Status:        StatusUnderStudy,
		Location:      "Huntington to Port Jefferson",
		KeyComponents: []string{
			"Third rail installation",
			"Substation construction",
			"Signal modifications",
			"Grade crossing work",
			"Environmental assessment",
		},
	},
	{
		ID:            "montauk-improvements",
		Name:          "Montauk Branch Improvements",
		Category:      CategoryElectrification,
		Description:   "Study of service improvements and potential electrification options for the Montauk Branch.",
		EstimatedCost: 800,
		StartYear:     2025,
		Status:        StatusUnderStudy,
		Location:      "Babylon to Montauk",
		KeyComponents: []string{
			"Service analysis",
			"Electrification feasibility",
			"Station improvements",
			"Track upgrades",
			"Capacity analysis",
		},
	},

	// Yards and maintenance facilities
	{
		ID:             "hillside-facility",
		Name:           "Hillside Maintenance Facility Modernization",
		Category:       CategoryMaintenanceFacilities,
		Description:    "Modernization of the Hillside Maintenance Complex to support new railcar fleet maintenance requirements.",
		EstimatedCost:  300,
		StartYear:      2022,
		CompletionYear: year(2026),
		Status:         StatusInProgress,
		Location:       "Jamaica, Queens",
		KeyComponents: []string{
			"Shop equipment upgrades",
			"Wheel truing machines",
			"Cleaning facilities",
			"Parts storage",
			"Environmental systems",
		},
	},
	{
		ID:             "mid-suffolk-yard",
		Name:           "Mid-Suffolk Yard Expansion",
		Category:       CategoryMaintenanceFacilities,
		Description:    "Expansion of yard facilities in Suffolk County to support increased service levels.",
		EstimatedCost:  180,
		StartYear:      2026,
		CompletionYear: year(2029),
		Status:         StatusPlanned,
		Location:       "Ronkonkoma, Suffolk",
		KeyComponents: []string{
			"Additional storage tracks",
			"Servicing facilities",
			"Crew facilities",
			"Security improvements",
			"Access roads",
		},
	},

	// Penn Station Access
	{
		ID:             "psa-lirr",
		Name:           "Penn Station Access - LIRR Connections",
		Category:       CategoryExpansion,
		Description:    "LIRR improvements related to the Penn Station Access project bringing Metro-North to Penn Station.",
		EstimatedCost:  200,
		StartYear:      2023,
		CompletionYear: year(2027),
		Status:         StatusInProgress,
		Location:       "Penn Station Area",
		KeyComponents: []string{
			"Track modifications",
			"Signal integration",
			"Platform coordination",
			"Operations planning",
			"Passenger wayfinding",
		},
	},
}
