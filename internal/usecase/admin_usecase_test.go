package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/parser"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/storage"
)

type adminFixture struct {
	uc       AdminUseCase
	admins   repository.AdminRepository
	products repository.ProductRepository
	hardware repository.HardwareRepository
	chats    repository.ChatRepository
}

func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()
	f := adminFixture{
		admins:   storage.NewMemoryAdminRepository(),
		products: storage.NewMemoryProductRepository(),
		hardware: storage.NewMemoryHardwareRepository(),
		chats:    storage.NewMemoryChatRepository(20),
	}
	f.uc = NewAdminUseCase(
		f.admins,
		storage.NewMemorySessionStore(0),
		f.products,
		f.hardware,
		parser.NewExcelParser(),
		parser.NewExcelExporter(),
		f.chats,
	)
	require.NoError(t, f.uc.Bootstrap(context.Background(), "root", "secret-pass"))
	return f
}

func TestAdminUseCase_BootstrapOnlyOnce(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	require.NoError(t, f.uc.Bootstrap(ctx, "other", "another-pass"))
	admins, err := f.uc.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "root", admins[0].Username)
	assert.NotEqual(t, "secret-pass", admins[0].PasswordHash)
}

func TestAdminUseCase_LoginLogout(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	_, err := f.uc.Login(ctx, "root", "wrong")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)
	_, err = f.uc.Login(ctx, "nobody", "secret-pass")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)

	session, err := f.uc.Login(ctx, "root", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, session.Role)

	ok, err := f.uc.IsAdmin(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.uc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Subject, got.Subject)

	require.NoError(t, f.uc.Logout(ctx, session.Token))
	ok, err = f.uc.IsAdmin(ctx, session.Token)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.uc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)

	actions, err := f.uc.Actions(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.Equal(t, "login", actions[0].Action)
}

func TestAdminUseCase_DeleteAdminGuards(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	admins, err := f.uc.ListAdmins(ctx)
	require.NoError(t, err)
	rootID := admins[0].ID

	err = f.uc.DeleteAdmin(ctx, "someone", rootID)
	assert.ErrorIs(t, err, repository.ErrInvalid, "last admin stays")

	second, err := f.uc.CreateAdmin(ctx, rootID, "helper", "helper-pass")
	require.NoError(t, err)

	_, err = f.uc.CreateAdmin(ctx, rootID, "HELPER", "helper-pass")
	assert.ErrorIs(t, err, repository.ErrConflict)
	_, err = f.uc.CreateAdmin(ctx, rootID, "short", "123")
	assert.ErrorIs(t, err, repository.ErrInvalid)

	err = f.uc.DeleteAdmin(ctx, second.ID, second.ID)
	assert.ErrorIs(t, err, repository.ErrInvalid, "cannot delete self")

	require.NoError(t, f.uc.DeleteAdmin(ctx, rootID, second.ID))
}

func TestAdminUseCase_UploadAndExportProducts(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)
	seedHardware(t, f.hardware)

	data, err := parser.NewExcelExporter().ExportProducts(ctx, []entity.Product{
		{ID: "p1", Title: "AM5 Kit", ProductType: entity.ProductTypeKit, Categories: []string{"kit"}, Price: 5200,
			Components: map[entity.HardwareCategory]entity.HardwareItem{
				entity.CategoryProcessor:   {ID: "cpu-am5"},
				entity.CategoryMotherboard: {ID: "mb-am5"},
				entity.CategoryMemory:      {ID: "ram-ddr5"},
			}},
		{ID: "p2", Title: "Mouse", Price: 90},
		{ID: "p3", Title: "Gaming PC", ProductType: entity.ProductTypePC, Price: 7000},
		{ID: "p4", Title: "Ghost Kit", ProductType: entity.ProductTypeKit, Price: 900,
			Components: map[entity.HardwareCategory]entity.HardwareItem{
				entity.CategoryProcessor:   {ID: "cpu-missing"},
				entity.CategoryMotherboard: {ID: "mb-am5"},
				entity.CategoryMemory:      {ID: "ram-ddr5"},
			}},
	})
	require.NoError(t, err)

	result, err := f.uc.UploadCatalog(ctx, "root", CatalogProducts, data, "products.xlsx", false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 2, result.Failed, "pc without components and kit with unknown part")

	p, err := f.products.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductTypeKit, p.ProductType)
	require.Len(t, p.Components, 3)
	assert.Equal(t, "AM5", p.Components[entity.CategoryProcessor].Socket)
	assert.InDelta(t, 590, p.TotalPrice, 1e-9)

	_, err = f.products.GetByID(ctx, "p3")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	out, err := f.uc.ExportCatalog(ctx, CatalogProducts)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	info, err := f.uc.CatalogInfo(ctx)
	require.NoError(t, err)
	assert.Contains(t, info, "Products: 2")

	_, err = f.uc.UploadCatalog(ctx, "root", CatalogKind("movies"), data, "x.xlsx", false)
	assert.ErrorIs(t, err, repository.ErrInvalid)
}

func TestAdminUseCase_CleanAll(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)
	seedHardware(t, f.hardware)
	require.NoError(t, f.products.Save(ctx, entity.Product{ID: "p1", Title: "PC"}))
	require.NoError(t, f.chats.SaveMessage(ctx, entity.Message{ID: "m1", SessionID: "s1", Text: "hi"}))

	require.NoError(t, f.uc.CleanAll(ctx, "root"))

	items, err := f.hardware.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)
	products, err := f.products.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)
	history, err := f.chats.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestParseCatalogKind(t *testing.T) {
	kind, err := ParseCatalogKind(" Hardware ")
	require.NoError(t, err)
	assert.Equal(t, CatalogHardware, kind)

	_, err = ParseCatalogKind("movies")
	assert.ErrorIs(t, err, repository.ErrInvalid)
}
