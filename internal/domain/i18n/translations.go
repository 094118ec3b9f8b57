package i18n

// Strings is the closed set of display strings the service hands to the
// client. Every key is a field; a language that leaves one empty is
// rejected by the package tests.
type Strings struct {
	Brand      string `json:"brand"`
	FooterDesc string `json:"footerDesc"`
	FooterMsg  string `json:"footerMsg"`
	MadeWith   string `json:"madeWith"`

	FAQ     string `json:"faq"`
	Privacy string `json:"privacy"`
	Contact string `json:"contact"`
	Tokutei string `json:"tokutei"`

	StepLanding  string `json:"stepLanding"`
	StepEditor   string `json:"stepEditor"`
	StepPreview  string `json:"stepPreview"`
	StepCheckout string `json:"stepCheckout"`

	BasicPlan    string `json:"basicPlan"`
	PremiumPlan  string `json:"premiumPlan"`
	InfinityPlan string `json:"infinityPlan"`
	PremiumOnly  string `json:"premiumOnly"`
	InfinityOnly string `json:"infinityOnly"`

	Themes          string `json:"themes"`
	Frames          string `json:"frames"`
	Effects         string `json:"effects"`
	Fonts           string `json:"fonts"`
	Milestones      string `json:"milestones"`
	VideosLabel     string `json:"videosLabel"`
	CustomURL       string `json:"customUrl"`
	SlugPlaceholder string `json:"slugPlaceholder"`

	TogetherForever string `json:"togetherForever"`
	Days            string `json:"days"`
	Hours           string `json:"hours"`
	Mins            string `json:"mins"`
	Secs            string `json:"segs"`

	DefaultPartner1 string `json:"defaultPartner1"`
	DefaultPartner2 string `json:"defaultPartner2"`
	MetaDescription string `json:"metaDescription"` // fmt: partner1, partner2
	MetaFallback    string `json:"metaFallback"`
	NativeShareMsg  string `json:"nativeShareMsg"`

	CapsuleTitle  string `json:"capsuleTitle"`
	CapsuleSealed string `json:"capsuleSealed"`

	UploadTrimmed     string `json:"uploadTrimmed"` // fmt: limit
	VideoLimitReached string `json:"videoLimitReached"`

	DomainStepConnect string `json:"domainStepConnect"`
	DomainStepLookup  string `json:"domainStepLookup"`
	DomainStepVerify  string `json:"domainStepVerify"`
	DomainAvailable   string `json:"domainAvailable"`
	DomainUnavailable string `json:"domainUnavailable"`

	PaymentSuccess   string `json:"paymentSuccess"`
	PaymentDeclined  string `json:"paymentDeclined"`
	ThankYou         string `json:"thankYou"`
	EmailSentMsg     string `json:"emailSentMsg"`
	QRCodeLabel      string `json:"qrCodeLabel"`
	SimulationNotice string `json:"simulationNotice"`
}

var table = map[Language]Strings{
	Portuguese: {
		Brand:      "KIZUNA",
		FooterDesc: "Criando conexões eternas através da arte digital.",
		FooterMsg:  "Feito com devoção. © 2024",
		MadeWith:   "Desenvolvido com ❤️ para Casais Apaixonados",

		FAQ:     "Dúvidas",
		Privacy: "Privacidade",
		Contact: "Contato",
		Tokutei: "Lei de Transações Comerciais",

		StepLanding:  "Planos",
		StepEditor:   "Editar",
		StepPreview:  "Visualizar",
		StepCheckout: "Finalizar e Criar",

		BasicPlan:    "Essência do Laço",
		PremiumPlan:  "Amor Máximo",
		InfinityPlan: "Infinito",
		PremiumOnly:  "Exclusivo Premium",
		InfinityOnly: "Exclusivo Infinito",

		Themes:          "Temas Premium",
		Frames:          "Molduras Premium",
		Effects:         "Efeito de Fundo",
		Fonts:           "Estilo da Fonte",
		Milestones:      "Nossos Marcos",
		VideosLabel:     "Nossos Vídeos",
		CustomURL:       "Seu Link Personalizado",
		SlugPlaceholder: "ex: joao-e-maria",

		TogetherForever: "Caminhando Lado a Lado há...",
		Days:            "Dias",
		Hours:           "Horas",
		Mins:            "Minutos",
		Secs:            "Segundos",

		DefaultPartner1: "Você",
		DefaultPartner2: "Eu",
		MetaDescription: "Veja a história de amor de %s e %s no KIZUNA.",
		MetaFallback:    "Um laço eterno celebrado no KIZUNA.",
		NativeShareMsg:  "Veja nossa história eterna no KIZUNA!",

		CapsuleTitle:  "Cápsula do Tempo",
		CapsuleSealed: "Cápsula do Tempo Selada",

		UploadTrimmed:     "Seu plano permite até %d foto(s). As fotos excedentes foram ignoradas.",
		VideoLimitReached: "Limite de vídeos do seu plano atingido.",

		DomainStepConnect: "Conectando ao registro de domínios...",
		DomainStepLookup:  "Consultando disponibilidade...",
		DomainStepVerify:  "Verificando reservas...",
		DomainAvailable:   "Domínio disponível!",
		DomainUnavailable: "Domínio indisponível. Tente outro nome.",

		PaymentSuccess:   "Sua história brilha no KIZUNA!",
		PaymentDeclined:  "Pagamento recusado. Verifique os dados do cartão.",
		ThankYou:         "É uma honra fazer parte da sua história.",
		EmailSentMsg:     "Enviamos o acesso para:",
		QRCodeLabel:      "Aponte a câmera para reviver",
		SimulationNotice: "Este é um ambiente de simulação. Não utilize dados de cartões reais.",
	},
	Japanese: {
		Brand:      "絆 (KIZUNA)",
		FooterDesc: "デジタルアートを通じて永遠の繋がりを創造する。",
		FooterMsg:  "二人の絆が永遠に輝き続けることを願って. © 2024",
		MadeWith:   "愛するカップルのために❤️で作られました",

		FAQ:     "よくある質問",
		Privacy: "プライバシー",
		Contact: "お問い合わせ",
		Tokutei: "特定商取引法に基づく表記",

		StepLanding:  "プラン",
		StepEditor:   "編集",
		StepPreview:  "プレビュー",
		StepCheckout: "完了して作成",

		BasicPlan:    "絆の原点",
		PremiumPlan:  "究極の愛",
		InfinityPlan: "インフィニティ",
		PremiumOnly:  "プレミアム限定",
		InfinityOnly: "インフィニティ限定",

		Themes:          "プレミアムテーマ",
		Frames:          "プレミアムフレーム",
		Effects:         "背景エフェクト",
		Fonts:           "フォントスタイル",
		Milestones:      "二人の軌跡",
		VideosLabel:     "二人のビデオ",
		CustomURL:       "カスタムURL",
		SlugPlaceholder: "例: taro-and-hanako",

		TogetherForever: "永遠に共に歩む時間",
		Days:            "日",
		Hours:           "時間",
		Mins:            "分",
		Secs:            "秒",

		DefaultPartner1: "あなた",
		DefaultPartner2: "わたし",
		MetaDescription: "KIZUNAで%sと%sの愛の物語をご覧ください。",
		MetaFallback:    "KIZUNAで祝福される永遠の絆。",
		NativeShareMsg:  "KIZUNAでお互いの永遠の物語を見てください！",

		CapsuleTitle:  "タイムカプセル",
		CapsuleSealed: "封印されたタイムカプセル",

		UploadTrimmed:     "ご利用のプランでは最大%d枚までです。超過分は追加されませんでした。",
		VideoLimitReached: "ビデオの上限に達しました。",

		DomainStepConnect: "ドメインレジストリに接続中...",
		DomainStepLookup:  "空き状況を確認中...",
		DomainStepVerify:  "予約状況を確認中...",
		DomainAvailable:   "このドメインは利用可能です！",
		DomainUnavailable: "このドメインは利用できません。別の名前をお試しください。",

		PaymentSuccess:   "KIZUNA de 刻まれました！",
		PaymentDeclined:  "お支払いが拒否されました。カード情報をご確認ください。",
		ThankYou:         "光栄に思います。",
		EmailSentMsg:     "アクセスリンクを送信しました：",
		QRCodeLabel:      "カメラで愛を再確認",
		SimulationNotice: "これはシミュレーション環境です。実際のカード情報は使用しないでください。",
	},
}

// For returns the strings of l, falling back to the default language.
func For(l Language) Strings {
	if s, ok := table[l]; ok {
		return s
	}
	return table[Default]
}
