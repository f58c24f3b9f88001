package content

import "vfxfolio/internal/database"

// 站点在数据库缺行、查询失败或未配置存储时渲染的兜底内容。
// 匿名访客永远不应看到后端错误，只会看到这些默认值。

// DefaultHero 返回首屏横幅的默认内容。
func DefaultHero() database.HeroContent {
	return database.HeroContent{
		ID:       1,
		Title:    "3D & VFX ARTIST PORTFOLIO",
		Subtitle: "By Jules Rukundo | VFX Technical Director",
	}
}

// DefaultAbout 返回关于页的默认内容。
func DefaultAbout() database.AboutContent {
	return database.AboutContent{
		ID: 1,
		Bio1: "I am a VFX Technical Director specializing in procedural systems and dynamic simulations. " +
			"With a passion for blending art and code, I create cinematic visual effects that push the boundaries of realism.",
		Bio2:       "My workflow integrates Houdini, Unreal Engine, and custom Python tools to deliver high-end results for film and games.",
		Location:   "Remote / Worldwide",
		Experience: "5+ Years",
		Specialty:  "Pyro & Destruction",
	}
}

// DefaultContactInfo 返回默认联系方式。
func DefaultContactInfo() database.ContactInfo {
	return database.ContactInfo{
		ID:    1,
		Email: "contact@julesrukundo.com",
		Phone: "+1 (555) 123-4567",
	}
}

// DefaultServices 返回默认服务列表。
func DefaultServices() []database.Service {
	return []database.Service{
		{ID: 1, Title: "Pyro & Explosions", Description: "High-end fire, smoke, and explosion simulations for cinematic shots.", Icon: "🔥"},
		{ID: 2, Title: "RBD Destruction", Description: "Procedural fracturing and rigid body dynamics for large-scale destruction.", Icon: "💥"},
		{ID: 3, Title: "Fluid Simulations", Description: "Realistic water, oceans, and viscosity effects using FLIP solvers.", Icon: "🌊"},
		{ID: 4, Title: "Terrain Generation", Description: "World building and heightfield generation for vast landscapes.", Icon: "⛰️"},
		{ID: 5, Title: "Lookdev & Lighting", Description: "Shading, texturing, and lighting setup for photorealistic rendering.", Icon: "💡"},
		{ID: 6, Title: "Compositing", Description: "Final integration of CG elements with live-action footage.", Icon: "🎬"},
		{ID: 7, Title: "Motion Graphics", Description: "Abstract 3D motion design and HUD animations.", Icon: "✨"},
		{ID: 8, Title: "Environment FX", Description: "Atmospherics, clouds, and weather effects.", Icon: "☁️"},
	}
}

// DefaultSkills 返回默认技能卡片。
func DefaultSkills() []database.Skill {
	return []database.Skill{
		{ID: "pyro", Title: "Pyro FX", Description: "Fire, Smoke, Explosions", Icon: "🔥", Theme: "orange"},
		{ID: "rbd", Title: "RBD / Destruction", Description: "Fracturing, Rigid Bodies", Icon: "💥", Theme: "red"},
		{ID: "flip", Title: "FLIP Fluids", Description: "Water, Splash, Ocean", Icon: "🌊", Theme: "blue"},
		{ID: "vellum", Title: "Vellum", Description: "Cloth, Hair, Soft Bodies", Icon: "🧵", Theme: "purple"},
		{ID: "terrain", Title: "Terrain", Description: "Heightfields, Landscapes", Icon: "⛰️", Theme: "green"},
		{ID: "particles", Title: "Particles", Description: "Procedural Modeling, POPs", Icon: "✨", Theme: "cyan"},
		{ID: "mpm", Title: "MPM", Description: "Granular, Sand, Snow", Icon: "🧩", Theme: "neonBlue"},
		{ID: "tops", Title: "TOPs / PDG", Description: "Task Operators, Pipeline", Icon: "⚙️", Theme: "techGrey"},
		{ID: "lops", Title: "LOPs / Solaris", Description: "USD, Lighting, Layout", Icon: "🌐", Theme: "gold"},
	}
}

// DefaultProjects 返回默认作品列表。作品没有占位内容，默认为空。
func DefaultProjects() []database.Project {
	return []database.Project{}
}
