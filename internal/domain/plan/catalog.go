package plan

import "kizuna/internal/domain/i18n"

// ListPlans returns the catalog in tier order. Limits and flags never depend
// on lang; each call returns fresh slices the caller may modify.
func ListPlans(lang i18n.Language) []Plan {
	pt := lang != i18n.Japanese
	pick := func(ptValue, jpValue string) string {
		if pt {
			return ptValue
		}
		return jpValue
	}
	pickList := func(ptValues, jpValues []string) []string {
		if pt {
			return ptValues
		}
		return jpValues
	}

	return []Plan{
		{
			ID:    PlanBasic,
			Name:  pick("Plano Essencial", "ベーシックプラン"),
			Price: pick("R$ 29,90", "¥ 800"),
			Features: pickList([]string{
				"Página Online 24/7",
				"Contador de Tempo Real",
				"Foto Especial",
				"Escolha de Fontes",
				"Efeito de Partículas Padrão",
				"Design Minimalista",
			}, []string{
				"24時間365日オンライン",
				"経過時間カウンター",
				"大切な写真",
				"フォントの選択",
				"標準的なエフェクト",
				"ミニマルデザイン",
			}),
			ImageLimit: 1,
			VideoLimit: 0,
		},
		{
			ID:    PlanPremium,
			Name:  pick("Plano Amor Máximo", "永遠の絆プラン"),
			Price: pick("R$ 49,90", "¥ 1400"),
			Features: pickList([]string{
				"Temas Premium Exclusivos",
				"Molduras Artísticas Personalizadas",
				"Música de Fundo (YouTube)",
				"Linha do Tempo \"Nossos Marcos\"",
				"Galeria com 4 Fotos",
				"Link Personalizado (Slug)",
				"Efeitos de Partículas Avançados",
			}, []string{
				"限定プレミアムテーマ",
				"カスタムアーティスティックフレーム",
				"BGM設定（YouTube）",
				"二人の軌跡（タイムライン）",
				"4枚の思い出ギャラリー",
				"カスタムURL設定",
				"高度な粒子エフェクト",
			}),
			ImageLimit:     4,
			VideoLimit:     0,
			HasMusic:       true,
			PremiumEffects: true,
			PremiumThemes:  true,
		},
		{
			ID:    PlanInfinity,
			Name:  pick("Plano Infinito", "インフィニティプラン"),
			Price: pick("R$ 89,90", "¥ 2500"),
			Features: pickList([]string{
				"Tudo do Plano Amor Máximo",
				"Domínio Próprio (.love ou .com)",
				"Galeria Estendida (20 fotos)",
				"Suporte a 5 Vídeos (YouTube)",
				"Cápsula do Tempo Digital",
				"Suporte Prioritário 24h",
				"Efeito Visual Exclusivo \"Infinity\"",
			}, []string{
				"永遠の絆プランの全機能",
				"独自ドメイン (.love または .com)",
				"最大20枚のフォトギャラリー",
				"5つのビデオサポート",
				"デジタルタイムカプセル",
				"24時間優先サポート",
				"特別エフェクト「インフィニティ」",
			}),
			ImageLimit:     20,
			VideoLimit:     5,
			HasMusic:       true,
			PremiumEffects: true,
			PremiumThemes:  true,
			HasDomain:      true,
		},
	}
}

// Find returns the catalog entry for id in lang.
func Find(lang i18n.Language, id PlanType) (Plan, bool) {
	for _, p := range ListPlans(lang) {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// FindOrFirst returns the entry for id, or the first (Basic) entry.
func FindOrFirst(lang i18n.Language, id PlanType) Plan {
	if p, ok := Find(lang, id); ok {
		return p
	}
	return ListPlans(lang)[0]
}

func Themes() []ThemeOption {
	return []ThemeOption{
		{
			ID:      ThemeRomantic,
			Name:    "Kizuna Lavender",
			Palette: Palette{Background: "#f8f7f9", Card: "#ffffffe6", Text: "#a47fba", Accent: "#a47fba"},
		},
		{
			ID:      ThemeClassic,
			Name:    "Kizuna Azure",
			Premium: true,
			Palette: Palette{Background: "#f0f9ff", Card: "#ffffffe6", Text: "#67cbf1", Accent: "#67cbf1"},
		},
		{
			ID:      ThemeMidnight,
			Name:    "Kizuna Graphite",
			Premium: true,
			Palette: Palette{Background: "#30302e", Card: "#3d3d3ce6", Text: "#f0f9ff", Accent: "#a47fba"},
		},
	}
}

// FindTheme looks up a theme option by id.
func FindTheme(id Theme) (ThemeOption, bool) {
	for _, t := range Themes() {
		if t.ID == id {
			return t, true
		}
	}
	return ThemeOption{}, false
}

func Effects(lang i18n.Language) []EffectOption {
	pt := lang != i18n.Japanese
	name := func(ptName, jpName string) string {
		if pt {
			return ptName
		}
		return jpName
	}
	return []EffectOption{
		{ID: EffectNone, Name: name("Nenhum", "なし")},
		{ID: EffectHearts, Name: name("Púrpura", "パープル")},
		{ID: EffectSparkles, Name: name("Brilho Celeste", "アズールブライト"), Premium: true},
		{ID: EffectPetals, Name: name("Pétalas", "桜"), Premium: true},
		{ID: EffectFireflies, Name: name("Vagalumes", "蛍"), Premium: true},
		{ID: EffectInfinity, Name: name("Infinity (Exclusivo ∞)", "無限"), Premium: true, TopTier: true},
	}
}

func findEffect(id Effect) (EffectOption, bool) {
	for _, e := range Effects(i18n.Default) {
		if e.ID == id {
			return e, true
		}
	}
	return EffectOption{}, false
}

func Frames() []FrameOption {
	return []FrameOption{
		{ID: FrameNone, Name: "Sem Moldura"},
		{ID: FramePolaroid, Name: "Polaroid Retro"},
		{ID: FrameGold, Name: "Borda Artística", Premium: true},
		{ID: FrameOrganic, Name: "Minimalista"},
	}
}

// FindFrame looks up a frame option by id.
func FindFrame(id Frame) (FrameOption, bool) {
	for _, f := range Frames() {
		if f.ID == id {
			return f, true
		}
	}
	return FrameOption{}, false
}

func Fonts() []FontOption {
	return []FontOption{
		{ID: FontRomantic, Name: "Romântica"},
		{ID: FontModern, Name: "Moderna"},
		{ID: FontElegant, Name: "Elegante"},
		{ID: FontMinimalist, Name: "Minimalista"},
	}
}
