package main

import (
	"bytes"
	"context"
	"flag"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"kizuna/internal/config"
	"kizuna/internal/database"
	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/dataurl"
	"kizuna/internal/storage"
)

// Seed writes a demo Infinity draft into one session namespace. Open the
// site with the printed session id as the session cookie to see it.
func main() {
	session := flag.String("session", "00000000-0000-4000-8000-000000000001", "session id to seed")
	flag.Parse()

	if uuid.Validate(*session) != nil {
		log.Fatalf("session must be a uuid: %q", *session)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	backend, err := storage.NewCompressing(storage.NewSQLStore(db), cfg.Storage.CompressThreshold)
	if err != nil {
		log.Fatal(err)
	}
	store := draft.NewManager(backend).For(*session)
	ctx := context.Background()

	log.Println("Cleaning old draft...")
	if err := store.Reset(ctx); err != nil {
		log.Fatal("reset failed:", err)
	}

	log.Println("Creating demo images...")
	palette := []color.NRGBA{
		{R: 0xb5, G: 0x9a, B: 0xd8, A: 0xff},
		{R: 0x7f, G: 0xa7, B: 0xd9, A: 0xff},
		{R: 0x3a, G: 0x3d, B: 0x45, A: 0xff},
	}
	images := make([]string, 0, len(palette))
	for _, c := range palette {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, imaging.New(320, 240, c), imaging.JPEG); err != nil {
			log.Fatal("encode failed:", err)
		}
		images = append(images, dataurl.Encode("image/jpeg", buf.Bytes()))
	}

	if _, err := store.SelectPlan(ctx, plan.PlanInfinity); err != nil {
		log.Fatal("select plan failed:", err)
	}
	if err := store.SetLanguage(ctx, i18n.Portuguese); err != nil {
		log.Fatal("set language failed:", err)
	}

	d, err := store.Update(ctx, draft.Patch{
		Partner1:        draft.Ptr("Ana"),
		Partner2:        draft.Ptr("Leo"),
		StartDate:       draft.Ptr("2019-02-14"),
		Message:         draft.Ptr("Cada dia ao seu lado é o meu lugar favorito."),
		Slug:            draft.Ptr("ana-e-leo"),
		Images:          &images,
		Videos:          &[]string{"https://youtu.be/dQw4w9WgXcQ"},
		MusicURL:        draft.Ptr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
		Effect:          draft.Ptr(plan.EffectInfinity),
		Theme:           draft.Ptr(plan.ThemeMidnight),
		Frame:           draft.Ptr(plan.FrameGold),
		FontFamily:      draft.Ptr(plan.FontElegant),
		CapsuleMessage:  draft.Ptr("Abra no nosso décimo aniversário."),
		CapsuleOpenDate: draft.Ptr("2029-02-14"),
		RequestedDomain: draft.Ptr("ana-e-leo.love"),
		Milestones: &[]draft.Milestone{
			{ID: uuid.NewString(), Date: "2019-02-14", Title: "Primeiro encontro"},
			{ID: uuid.NewString(), Date: "2021-06-12", Title: "Pedido de namoro"},
			{ID: uuid.NewString(), Date: "2024-09-07", Title: "Casamento"},
		},
	})
	if err != nil {
		log.Fatal("seed update failed:", err)
	}

	log.Printf("seed completed: session=%s plan=%s images=%d milestones=%d", *session, d.Plan, len(d.Images), len(d.Milestones))
}
