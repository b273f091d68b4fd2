package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sabordecasa/storefront/internal/service/models/category"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/shopspring/decimal"
)

// ProductDal represents the product row as stored remotely. The store keeps
// its original Portuguese column names; this struct is the single place
// where they are translated to and from the domain field names. The mapping
// must stay exactly as is to interoperate with pre-existing rows:
//
//	name↔nome, category↔categoria, price↔preco, cost↔custo,
//	description↔descricao, stock↔estoque, image↔imagem
type ProductDal struct {
	Id        string          `db:"id"`
	Nome      string          `db:"nome"`
	Categoria string          `db:"categoria"`
	Preco     decimal.Decimal `db:"preco"`
	Custo     decimal.Decimal `db:"custo"`
	Descricao string          `db:"descricao"`
	Estoque   int             `db:"estoque"`
	Imagem    string          `db:"imagem"`
}

// ToModel converts ProductDal to the service layer Product model.
func (p *ProductDal) ToModel() (*product.Product, error) {
	cat, err := category.ParseCategory(p.Categoria)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", p.Id, err)
	}

	return &product.Product{
		ID:          p.Id,
		Name:        p.Nome,
		Category:    cat,
		Price:       p.Preco,
		Cost:        p.Custo,
		Description: p.Descricao,
		Stock:       p.Estoque,
		Image:       p.Imagem,
	}, nil
}

// ProductDalFromModel converts the service layer Product model to ProductDal.
func ProductDalFromModel(p *product.Product) *ProductDal {
	return &ProductDal{
		Id:        p.ID,
		Nome:      p.Name,
		Categoria: p.Category.String(),
		Preco:     p.Price,
		Custo:     p.Cost,
		Descricao: p.Description,
		Estoque:   p.Stock,
		Imagem:    p.Image,
	}
}

type PostgresProductRepository struct {
	conn sqlx.ExtContext
}

func NewPostgresProductRepository(conn sqlx.ExtContext) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
	}
}

var productColumns = []string{"id", "nome", "categoria", "preco", "custo", "descricao", "estoque", "imagem"}

// FetchAll retrieves the whole product catalog.
func (r *PostgresProductRepository) FetchAll(ctx context.Context) ([]product.Product, error) {
	query, args, err := sq.Select(productColumns...).
		From("products").
		OrderBy("nome ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build products query: %w", err)
	}

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var result []product.Product
	for rows.Next() {
		var dal ProductDal
		if err := rows.StructScan(&dal); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert product dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Insert stores a new product and returns it with its generated id.
func (r *PostgresProductRepository) Insert(ctx context.Context, draft product.Draft) (product.Product, error) {
	created := product.Product{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Cost:        draft.Cost,
		Description: draft.Description,
		Stock:       draft.Stock,
		Image:       draft.Image,
	}
	dal := ProductDalFromModel(&created)

	query, args, err := sq.Insert("products").
		Columns(productColumns...).
		Values(dal.Id, dal.Nome, dal.Categoria, dal.Preco, dal.Custo, dal.Descricao, dal.Estoque, dal.Imagem).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to build product insert query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return product.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	return created, nil
}

// Update overwrites the editable fields of an existing product.
func (r *PostgresProductRepository) Update(ctx context.Context, id string, draft product.Draft) error {
	query, args, err := sq.Update("products").
		Set("nome", draft.Name).
		Set("categoria", draft.Category.String()).
		Set("preco", draft.Price).
		Set("custo", draft.Cost).
		Set("descricao", draft.Description).
		Set("estoque", draft.Stock).
		Set("imagem", draft.Image).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build product update query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update product %s: %w", id, err)
	}

	return nil
}

// UpdateStock sets the absolute stock value for a product. Callers pass the
// value they computed from their own view of the catalog; there is no
// read-modify-write cycle here and no protection against concurrent
// decrements (known consistency gap, kept as is).
func (r *PostgresProductRepository) UpdateStock(ctx context.Context, id string, newStock int) error {
	query, args, err := sq.Update("products").
		Set("estoque", newStock).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build stock update query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update stock for product %s: %w", id, err)
	}

	return nil
}
