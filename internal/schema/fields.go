package schema

import "strconv"

// levels builds the common "0..n" option ladder used by most quality
// settings.
func levels(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{Value: strconv.Itoa(i), Label: l}
	}
	return opts
}

// fields is the fixed CS2 video schema. Order matches the order the game
// writes cs2_video.txt, which is also the form's display order.
var fields = []Field{
	{Key: "setting.max_fps", Label: "FPS Limit (0 = Unlimited)", Kind: Int, Min: 0, Max: 999, Step: 1},
	{Key: "setting.defaultres", Label: "Resolution Width", Kind: Int, Min: 320, Max: 7680, Step: 1},
	{Key: "setting.defaultresheight", Label: "Resolution Height", Kind: Int, Min: 200, Max: 4320, Step: 1},
	{Key: "setting.refreshrate_numerator", Label: "Refresh Rate (Hz)", Kind: Int, Min: 30, Max: 1000, Step: 1},
	{Key: "setting.refreshrate_denominator", Label: "Refresh Denominator", Kind: Int, Min: 1, Max: 4, Step: 1},
	{Key: "setting.fullscreen", Label: "Fullscreen", Kind: Bool},
	{Key: "setting.mat_vsync", Label: "V-Sync", Kind: Bool},
	{Key: "setting.monitor_index", Label: "Monitor Index", Kind: Int, Min: 0, Max: 7, Step: 1},
	{Key: "setting.cpu_level", Label: "CPU Detail Level", Kind: Enum, Options: levels("Low", "Medium", "High", "Ultra")},
	{Key: "setting.gpu_mem_level", Label: "GPU Memory Level", Kind: Enum, Options: levels("Low", "Medium", "High", "Ultra")},
	{Key: "setting.gpu_level", Label: "GPU Detail Level", Kind: Enum, Options: levels("Low", "Medium", "High", "Ultra")},
	{Key: "setting.knowndevice", Label: "Known Device (Auto)", Kind: Bool},
	{Key: "setting.nowindowborder", Label: "No Window Border", Kind: Bool},
	{Key: "setting.fullscreen_min_on_focus_loss", Label: "Minimize On Focus Loss", Kind: Bool},
	{Key: "setting.high_dpi", Label: "High DPI", Kind: Bool},
	{Key: "setting.coop_fullscreen", Label: "Coop Fullscreen", Kind: Bool},
	{Key: "setting.shaderquality", Label: "Shader Quality", Kind: Enum, Options: levels("Low", "Med", "High", "Ultra")},
	{Key: "setting.r_texturefilteringquality", Label: "Texture Filtering", Kind: Enum,
		Options: levels("Bilinear", "Trilinear", "Aniso 4x", "Aniso 8x", "Aniso 16x")},
	{Key: "setting.msaa_samples", Label: "MSAA Samples", Kind: Enum, Options: []Option{
		{Value: "0", Label: "Off"},
		{Value: "2", Label: "2x"},
		{Value: "4", Label: "4x"},
		{Value: "8", Label: "8x"},
	}},
	{Key: "setting.r_csgo_cmaa_enable", Label: "CMAA Anti-Aliasing", Kind: Bool},
	{Key: "setting.videocfg_shadow_quality", Label: "Shadow Quality", Kind: Enum, Options: levels("Low", "Med", "High", "Very High")},
	{Key: "setting.videocfg_dynamic_shadows", Label: "Dynamic Shadows", Kind: Enum, Options: levels("Off", "Some", "All")},
	{Key: "setting.videocfg_texture_detail", Label: "Texture Detail", Kind: Enum, Options: levels("Low", "Med", "High", "Ultra")},
	{Key: "setting.videocfg_particle_detail", Label: "Particle Detail", Kind: Enum, Options: levels("Low", "Med", "High", "Ultra")},
	{Key: "setting.videocfg_ao_detail", Label: "Ambient Occlusion", Kind: Enum, Options: levels("Disabled", "Low", "High")},
	{Key: "setting.videocfg_hdr_detail", Label: "HDR Detail", Kind: Enum, Options: []Option{
		{Value: "-1", Label: "Quality"},
		{Value: "0", Label: "Performance"},
		{Value: "1", Label: "Balanced"},
		{Value: "2", Label: "Quality"},
	}},
	{Key: "setting.videocfg_fsr_detail", Label: "FSR Detail", Kind: Enum,
		Options: levels("Off", "Performance", "Balanced", "Quality", "Ultra Quality")},
	{Key: "setting.r_low_latency", Label: "Low Latency (Reflex)", Kind: Enum, Options: levels("Disabled", "Enabled", "Enabled + Boost")},
	{Key: "setting.aspectratiomode", Label: "Aspect Ratio Mode", Kind: Enum, Options: levels("Auto", "4:3 Stretched", "16:9", "16:10")},

	// Metadata the game manages itself; shown read-only, preserved verbatim.
	{Key: "Version", Label: "Version", Kind: Meta},
	{Key: "VendorID", Label: "GPU VendorID", Kind: Meta},
	{Key: "DeviceID", Label: "GPU DeviceID", Kind: Meta},
	{Key: "Autoconfig", Label: "Auto Config", Kind: Meta},
}
