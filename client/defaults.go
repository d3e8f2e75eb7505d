package client

// Bundled fallback content shown in demo mode. Every function returns a
// fresh value so callers can mutate their copy freely.

func DefaultProfile() Profile {
	return Profile{
		ID:                 "profile-demo",
		Name:               "Ernesto Akinori Flores Gutiérrez",
		Title:              "Arquitecto & Diseñador de Interiores",
		LogoName:           "ARQUINORI",
		HeroSubtitle:       "Portafolio 2026",
		HeroTitlePrimary:   "ERNESTO",
		HeroTitleSecondary: "AKINORI",
		About:              "Arquitecto y diseñador de interiores. Utilizo el diseño de los espacios como un medio para la solución de problemas.",
		Phone:              "667-485-4587",
		Email:              "arquinori02@gmail.com",
		Address:            "Culiacán, Sinaloa",
		Socials: Socials{
			Instagram: "https://instagram.com/arquinori",
			LinkedIn:  "https://linkedin.com/",
			Behance:   "https://behance.net/",
		},
	}
}

func DefaultProjects() []Project {
	return []Project{
		{
			ID:          "project-demo-1",
			Title:       "Residencia Bosque Alto",
			Category:    "Residencial",
			Year:        "2023",
			Location:    "Sinaloa, México",
			Description: "Una residencia unifamiliar integrada en el entorno natural. El diseño prioriza las vistas panorámicas y la conservación de la vegetación existente.",
			Tags:        []string{"Sostenible", "Residencial", "Concreto", "Minimalista"},
			Images: []ProjectImage{
				{URL: "https://images.unsplash.com/photo-1600596542815-2a43847c13d9?auto=format&fit=crop&q=80&w=1600", Type: "render", Caption: "Vista Exterior Principal"},
				{URL: "https://images.unsplash.com/photo-1531835551805-16d864c8d311?auto=format&fit=crop&q=80&w=1600", Type: "plan", Caption: "Planta Arquitectónica"},
			},
			Featured: true,
			Order:    1,
		},
		{
			ID:          "project-demo-2",
			Title:       "Apartamento Loft Urbano",
			Category:    "Interiorismo",
			Year:        "2024",
			Location:    "Culiacán, Sinaloa",
			Description: "Remodelación de interiores enfocada en optimizar espacios pequeños mediante mobiliario a medida.",
			Tags:        []string{"Interiorismo", "Mobiliario", "Remodelación"},
			Images: []ProjectImage{
				{URL: "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?auto=format&fit=crop&q=80&w=1600", Type: "render", Caption: "Estancia Principal"},
			},
			Order: 2,
		},
	}
}

func DefaultExperience() []Experience {
	return []Experience{
		{ID: "experience-demo-1", Role: "Arquitecto Proyectista", Company: "Estudio AKN", Period: "2023 — Presente", Description: "Diseño arquitectónico y coordinación de proyectos residenciales.", Order: 1},
		{ID: "experience-demo-2", Role: "Diseñador de Interiores", Company: "Casa Blanca Interiores", Period: "2022 — 2023", Description: "Proyectos de interiorismo residencial y comercial.", Order: 2},
	}
}

func DefaultEducation() []Education {
	return []Education{
		{ID: "education-demo-1", Degree: "Licenciatura en Arquitectura", Institution: "Universidad Autónoma de Sinaloa", Year: "2022", Order: 1},
		{ID: "education-demo-2", Degree: "Diseño de Interiores", Institution: "Universidad Casa Blanca", Year: "2023", Order: 2},
	}
}

func DefaultCourses() []Course {
	return []Course{
		{ID: "course-demo-1", Name: "Modelado BIM con Revit", Institution: "Autodesk", Year: "2023", Order: 1},
		{ID: "course-demo-2", Name: "Render fotorrealista", Institution: "Chaos Group", Year: "2024", Order: 2},
	}
}

func DefaultSkills() []Skill {
	return []Skill{
		{ID: "skill-demo-1", Name: "AutoCAD", Level: 95, Order: 1},
		{ID: "skill-demo-2", Name: "Revit", Level: 85, Order: 2},
		{ID: "skill-demo-3", Name: "SketchUp", Level: 90, Order: 3},
		{ID: "skill-demo-4", Name: "V-Ray", Level: 80, Order: 4},
	}
}

func DefaultInterests() []Interest {
	return []Interest{
		{ID: "interest-demo-1", Name: "Fotografía", Icon: "📷", Order: 1},
		{ID: "interest-demo-2", Name: "Viajes", Icon: "✈️", Order: 2},
		{ID: "interest-demo-3", Name: "Dibujo", Icon: "✏️", Order: 3},
	}
}
