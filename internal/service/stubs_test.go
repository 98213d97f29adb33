package service

// In-memory repository stubs shared by the service tests. Services open no
// real transaction when DB() returns nil, so every stub ignores the tx
// argument and reads its own maps.

import (
	"context"
	"sort"
	"time"

	"precificacao/internal/model"
	"precificacao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubStore struct {
	materials  map[int64]*model.Material
	processes  map[int64]*model.Process
	third      map[int64]*model.ThirdPartyItem
	adminCosts []model.AdminCost
	clients    map[int64]*model.Client
	ncmTaxes   []model.NcmTax
	products   map[int64]*model.Product
	matUsage   []model.MaterialUsage
	procUsage  []model.ProcessUsage
	thirdUsage []model.ThirdUsage
	components []model.ComponentUsage
	quoteLinks []model.QuoteLink
	nextID     int64
}

func newStubStore() *stubStore {
	return &stubStore{
		materials: make(map[int64]*model.Material),
		processes: make(map[int64]*model.Process),
		third:     make(map[int64]*model.ThirdPartyItem),
		clients:   make(map[int64]*model.Client),
		products:  make(map[int64]*model.Product),
	}
}

func (s *stubStore) id() int64 {
	s.nextID++
	return s.nextID
}

// ── Fixture helpers ──────────────────────────────────────────────────────────

func (s *stubStore) addMaterial(name, price string) *model.Material {
	m := &model.Material{ID: s.id(), Name: name, Unit: "kg", UnitPrice: dec(price)}
	s.materials[m.ID] = m
	return m
}

func (s *stubStore) addProcess(name, pricePerHour string) *model.Process {
	p := &model.Process{ID: s.id(), Name: name, Unit: "hora", Origin: "Manual", PricePerHour: dec(pricePerHour)}
	s.processes[p.ID] = p
	return p
}

func (s *stubStore) addThird(name, price string) *model.ThirdPartyItem {
	t := &model.ThirdPartyItem{ID: s.id(), Name: name, UnitPrice: dec(price), DefaultQty: dec("1")}
	s.third[t.ID] = t
	return t
}

func (s *stubStore) addAdminCost(name, value string) {
	s.adminCosts = append(s.adminCosts, model.AdminCost{ID: s.id(), Name: name, Value: dec(value)})
}

func (s *stubStore) addClient(name, uf, pis, cofins, icms string) *model.Client {
	c := &model.Client{
		ID: s.id(), Name: name, UF: uf, Regime: "real",
		PIS: dec(pis), COFINS: dec(cofins), ICMS: dec(icms), Factor: dec("1"),
	}
	s.clients[c.ID] = c
	return c
}

func (s *stubStore) addNcmTax(ncm, pis, cofins, icms string) {
	s.ncmTaxes = append(s.ncmTaxes, model.NcmTax{
		ID: s.id(), NCM: ncm, PIS: dec(pis), COFINS: dec(cofins), ICMS: dec(icms),
	})
}

func (s *stubStore) addProduct(name, originUF, destUF string) *model.Product {
	p := &model.Product{
		ID: s.id(), Code: name, Name: name, Quantity: dec("1"),
		OriginUF: originUF, DestinationUF: destUF,
	}
	s.products[p.ID] = p
	return p
}

func (s *stubStore) useMaterial(productID, materialID int64, qty string) {
	s.matUsage = append(s.matUsage, model.MaterialUsage{
		ID: s.id(), ProductID: productID, MaterialID: materialID, Quantity: dec(qty),
	})
}

func (s *stubStore) useProcess(productID, processID int64, hours string) {
	s.procUsage = append(s.procUsage, model.ProcessUsage{
		ID: s.id(), ProductID: productID, ProcessID: processID, Hours: dec(hours),
	})
}

func (s *stubStore) useThird(productID, thirdID int64, qty string) {
	s.thirdUsage = append(s.thirdUsage, model.ThirdUsage{
		ID: s.id(), ProductID: productID, ThirdID: thirdID, Quantity: dec(qty),
	})
}

func (s *stubStore) useComponent(parentID, childID int64, qty string) {
	s.components = append(s.components, model.ComponentUsage{
		ID: s.id(), ParentProductID: parentID, ComponentProductID: childID, Quantity: dec(qty),
	})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── CatalogRepository stub ───────────────────────────────────────────────────

type stubCatalogRepo struct{ store *stubStore }

func (r *stubCatalogRepo) ListMaterials(_ context.Context) ([]model.Material, error) {
	out := make([]model.Material, 0, len(r.store.materials))
	for _, id := range sortedKeys(r.store.materials) {
		out = append(out, *r.store.materials[id])
	}
	return out, nil
}

func (r *stubCatalogRepo) ListProcesses(_ context.Context) ([]model.Process, error) {
	out := make([]model.Process, 0, len(r.store.processes))
	for _, id := range sortedKeys(r.store.processes) {
		out = append(out, *r.store.processes[id])
	}
	return out, nil
}

func (r *stubCatalogRepo) ListThirdParty(_ context.Context) ([]model.ThirdPartyItem, error) {
	out := make([]model.ThirdPartyItem, 0, len(r.store.third))
	for _, id := range sortedKeys(r.store.third) {
		out = append(out, *r.store.third[id])
	}
	return out, nil
}

func (r *stubCatalogRepo) ListAdminCosts(_ context.Context) ([]model.AdminCost, error) {
	return append([]model.AdminCost(nil), r.store.adminCosts...), nil
}

func (r *stubCatalogRepo) FindMaterialTx(_ *gorm.DB, id int64) (*model.Material, error) {
	m, ok := r.store.materials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubCatalogRepo) FindProcessTx(_ *gorm.DB, id int64) (*model.Process, error) {
	p, ok := r.store.processes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubCatalogRepo) FindThirdPartyTx(_ *gorm.DB, id int64) (*model.ThirdPartyItem, error) {
	t, ok := r.store.third[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubCatalogRepo) SumAdminCostsTx(_ *gorm.DB) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range r.store.adminCosts {
		total = total.Add(a.Value)
	}
	return total, nil
}

func (r *stubCatalogRepo) FindMaterialByNameTx(_ *gorm.DB, name string) (*model.Material, error) {
	for _, id := range sortedKeys(r.store.materials) {
		if r.store.materials[id].Name == name {
			return r.store.materials[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogRepo) FindProcessByNameTx(_ *gorm.DB, name string) (*model.Process, error) {
	for _, id := range sortedKeys(r.store.processes) {
		if r.store.processes[id].Name == name {
			return r.store.processes[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogRepo) FindThirdPartyByNameTx(_ *gorm.DB, name string) (*model.ThirdPartyItem, error) {
	for _, id := range sortedKeys(r.store.third) {
		if r.store.third[id].Name == name {
			return r.store.third[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogRepo) CreateMaterialTx(_ *gorm.DB, m *model.Material) error {
	m.ID = r.store.id()
	r.store.materials[m.ID] = m
	return nil
}

func (r *stubCatalogRepo) CreateProcessTx(_ *gorm.DB, p *model.Process) error {
	p.ID = r.store.id()
	r.store.processes[p.ID] = p
	return nil
}

func (r *stubCatalogRepo) CreateThirdPartyTx(_ *gorm.DB, t *model.ThirdPartyItem) error {
	t.ID = r.store.id()
	r.store.third[t.ID] = t
	return nil
}

func (r *stubCatalogRepo) CreateProcesses(_ context.Context, rows []model.Process) error {
	for i := range rows {
		rows[i].ID = r.store.id()
		cloned := rows[i]
		r.store.processes[cloned.ID] = &cloned
	}
	return nil
}

func (r *stubCatalogRepo) CreateMaterials(_ context.Context, rows []model.Material) error {
	for i := range rows {
		rows[i].ID = r.store.id()
		cloned := rows[i]
		r.store.materials[cloned.ID] = &cloned
	}
	return nil
}

func (r *stubCatalogRepo) ReplaceMaterialsTx(_ *gorm.DB, rows []model.Material) error {
	r.store.materials = make(map[int64]*model.Material)
	for i := range rows {
		if rows[i].ID == 0 {
			rows[i].ID = r.store.id()
		}
		cloned := rows[i]
		r.store.materials[cloned.ID] = &cloned
	}
	return nil
}

func (r *stubCatalogRepo) ReplaceProcessesTx(_ *gorm.DB, rows []model.Process) error {
	r.store.processes = make(map[int64]*model.Process)
	for i := range rows {
		if rows[i].ID == 0 {
			rows[i].ID = r.store.id()
		}
		cloned := rows[i]
		r.store.processes[cloned.ID] = &cloned
	}
	return nil
}

func (r *stubCatalogRepo) ReplaceThirdPartyTx(_ *gorm.DB, rows []model.ThirdPartyItem) error {
	r.store.third = make(map[int64]*model.ThirdPartyItem)
	for i := range rows {
		if rows[i].ID == 0 {
			rows[i].ID = r.store.id()
		}
		cloned := rows[i]
		r.store.third[cloned.ID] = &cloned
	}
	return nil
}

func (r *stubCatalogRepo) ReplaceAdminCostsTx(_ *gorm.DB, rows []model.AdminCost) error {
	r.store.adminCosts = append([]model.AdminCost(nil), rows...)
	return nil
}

func (r *stubCatalogRepo) DB() *gorm.DB { return nil }

var _ repository.CatalogRepository = (*stubCatalogRepo)(nil)

// ── ClientRepository stub ────────────────────────────────────────────────────

type stubClientRepo struct{ store *stubStore }

func (r *stubClientRepo) List(_ context.Context) ([]model.Client, error) {
	out := make([]model.Client, 0, len(r.store.clients))
	for _, id := range sortedKeys(r.store.clients) {
		out = append(out, *r.store.clients[id])
	}
	return out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*model.Client, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubClientRepo) FindByIDTx(_ *gorm.DB, id int64) (*model.Client, error) {
	c, ok := r.store.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClientRepo) ReplaceAllTx(_ *gorm.DB, rows []model.Client) error {
	r.store.clients = make(map[int64]*model.Client)
	for i := range rows {
		if rows[i].ID == 0 {
			rows[i].ID = r.store.id()
		}
		cloned := rows[i]
		r.store.clients[cloned.ID] = &cloned
	}
	return nil
}

func (r *stubClientRepo) ListNcmTaxes(_ context.Context) ([]model.NcmTax, error) {
	return append([]model.NcmTax(nil), r.store.ncmTaxes...), nil
}

func (r *stubClientRepo) FindNcmTaxTx(_ *gorm.DB, ncm string) (*model.NcmTax, error) {
	for i := range r.store.ncmTaxes {
		if r.store.ncmTaxes[i].NCM == ncm {
			return &r.store.ncmTaxes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClientRepo) ReplaceNcmTaxesTx(_ *gorm.DB, rows []model.NcmTax) error {
	r.store.ncmTaxes = append([]model.NcmTax(nil), rows...)
	return nil
}

func (r *stubClientRepo) DB() *gorm.DB { return nil }

var _ repository.ClientRepository = (*stubClientRepo)(nil)

// ── ProductRepository stub ───────────────────────────────────────────────────

type stubProductRepo struct{ store *stubStore }

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	return r.CreateTx(nil, p)
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	return r.ListTx(nil)
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	return r.UpdateTx(nil, p)
}

func (r *stubProductRepo) ListByClient(_ context.Context, clientID int64) ([]model.Product, error) {
	seen := make(map[int64]bool)
	var out []model.Product
	for _, l := range r.store.quoteLinks {
		if l.ClientID != clientID || seen[l.ProductID] {
			continue
		}
		seen[l.ProductID] = true
		if p, ok := r.store.products[l.ProductID]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) ListTx(_ *gorm.DB) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.store.products))
	for _, id := range sortedKeys(r.store.products) {
		out = append(out, *r.store.products[id])
	}
	return out, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id int64) (*model.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	if p.ID == 0 {
		p.ID = r.store.id()
	}
	r.store.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) UpdateTx(_ *gorm.DB, p *model.Product) error {
	cloned := *p
	r.store.products[p.ID] = &cloned
	return nil
}

func (r *stubProductRepo) DeleteCascadeTx(_ *gorm.DB, id int64) error {
	delete(r.store.products, id)
	r.store.matUsage = filterMat(r.store.matUsage, id)
	r.store.procUsage = filterProc(r.store.procUsage, id)
	r.store.thirdUsage = filterThird(r.store.thirdUsage, id)

	var edges []model.ComponentUsage
	for _, e := range r.store.components {
		if e.ParentProductID != id && e.ComponentProductID != id {
			edges = append(edges, e)
		}
	}
	r.store.components = edges

	var links []model.QuoteLink
	for _, l := range r.store.quoteLinks {
		if l.ProductID != id {
			links = append(links, l)
		}
	}
	r.store.quoteLinks = links
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── CompositionRepository stub ───────────────────────────────────────────────

type stubCompositionRepo struct{ store *stubStore }

func (r *stubCompositionRepo) MaterialUsageTx(_ *gorm.DB, productID int64) ([]model.MaterialUsage, error) {
	var out []model.MaterialUsage
	for _, u := range r.store.matUsage {
		if u.ProductID == productID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubCompositionRepo) ProcessUsageTx(_ *gorm.DB, productID int64) ([]model.ProcessUsage, error) {
	var out []model.ProcessUsage
	for _, u := range r.store.procUsage {
		if u.ProductID == productID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubCompositionRepo) ThirdUsageTx(_ *gorm.DB, productID int64) ([]model.ThirdUsage, error) {
	var out []model.ThirdUsage
	for _, u := range r.store.thirdUsage {
		if u.ProductID == productID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubCompositionRepo) ComponentsTx(_ *gorm.DB, productID int64) ([]model.ComponentUsage, error) {
	var out []model.ComponentUsage
	for _, e := range r.store.components {
		if e.ParentProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubCompositionRepo) AddMaterialUsageTx(_ *gorm.DB, u *model.MaterialUsage) error {
	u.ID = r.store.id()
	r.store.matUsage = append(r.store.matUsage, *u)
	return nil
}

func (r *stubCompositionRepo) AddProcessUsageTx(_ *gorm.DB, u *model.ProcessUsage) error {
	u.ID = r.store.id()
	r.store.procUsage = append(r.store.procUsage, *u)
	return nil
}

func (r *stubCompositionRepo) AddThirdUsageTx(_ *gorm.DB, u *model.ThirdUsage) error {
	u.ID = r.store.id()
	r.store.thirdUsage = append(r.store.thirdUsage, *u)
	return nil
}

func (r *stubCompositionRepo) AddComponentTx(_ *gorm.DB, u *model.ComponentUsage) error {
	u.ID = r.store.id()
	r.store.components = append(r.store.components, *u)
	return nil
}

func (r *stubCompositionRepo) ClearAllTx(_ *gorm.DB, productID int64) error {
	r.store.matUsage = filterMat(r.store.matUsage, productID)
	r.store.procUsage = filterProc(r.store.procUsage, productID)
	r.store.thirdUsage = filterThird(r.store.thirdUsage, productID)
	var edges []model.ComponentUsage
	for _, e := range r.store.components {
		if e.ParentProductID != productID {
			edges = append(edges, e)
		}
	}
	r.store.components = edges
	return nil
}

func (r *stubCompositionRepo) DB() *gorm.DB { return nil }

var _ repository.CompositionRepository = (*stubCompositionRepo)(nil)

// ── QuoteLinkRepository stub ─────────────────────────────────────────────────

type stubQuoteLinkRepo struct{ store *stubStore }

func (r *stubQuoteLinkRepo) Create(_ context.Context, l *model.QuoteLink) error {
	l.ID = r.store.id()
	l.CreatedAt = time.Now()
	r.store.quoteLinks = append(r.store.quoteLinks, *l)
	return nil
}

func (r *stubQuoteLinkRepo) Delete(_ context.Context, productID, clientID int64) error {
	var out []model.QuoteLink
	for _, l := range r.store.quoteLinks {
		if l.ProductID != productID || l.ClientID != clientID {
			out = append(out, l)
		}
	}
	r.store.quoteLinks = out
	return nil
}

func (r *stubQuoteLinkRepo) ListByProduct(_ context.Context, productID int64) ([]model.QuoteLink, error) {
	var out []model.QuoteLink
	for _, l := range r.store.quoteLinks {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubQuoteLinkRepo) ListByClient(_ context.Context, clientID int64) ([]model.QuoteLink, error) {
	var out []model.QuoteLink
	for _, l := range r.store.quoteLinks {
		if l.ClientID == clientID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubQuoteLinkRepo) DB() *gorm.DB { return nil }

var _ repository.QuoteLinkRepository = (*stubQuoteLinkRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func sortedKeys[V any](m map[int64]*V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func filterMat(rows []model.MaterialUsage, productID int64) []model.MaterialUsage {
	var out []model.MaterialUsage
	for _, u := range rows {
		if u.ProductID != productID {
			out = append(out, u)
		}
	}
	return out
}

func filterProc(rows []model.ProcessUsage, productID int64) []model.ProcessUsage {
	var out []model.ProcessUsage
	for _, u := range rows {
		if u.ProductID != productID {
			out = append(out, u)
		}
	}
	return out
}

func filterThird(rows []model.ThirdUsage, productID int64) []model.ThirdUsage {
	var out []model.ThirdUsage
	for _, u := range rows {
		if u.ProductID != productID {
			out = append(out, u)
		}
	}
	return out
}
