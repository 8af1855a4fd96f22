package meta

import (
	"context"
	"net/url"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

// ListAdAccounts lista as contas de anúncio acessíveis pelo token
func (s *MetaIntegrator) ListAdAccounts(ctx context.Context, opts domain.ListOptions) (*domain.ListResult[domain.AdAccount], error) {
	params := url.Values{}
	params.Set("fields", fieldsOrDefault(opts.Fields, domain.AccountListFields).String())

	return list[domain.AdAccount](ctx, s.Client, "me/adaccounts", params, opts)
}

// GetAdAccount busca uma conta; sem ID usa a conta configurada
func (s *MetaIntegrator) GetAdAccount(ctx context.Context, id string, fields domain.FieldSet) (*domain.AdAccount, error) {
	id = domain.NormalizeAccountID(id)
	if id == "" {
		var err error
		if id, err = s.accountID(); err != nil {
			return nil, err
		}
	}

	account, err := get[domain.AdAccount](ctx, s.Client, id, fieldsOrDefault(fields, domain.AccountGetFields))
	if err != nil {
		if apiErrors.Code(err) == apiErrors.ErrEntityNotFound {
			return nil, apiErrors.Wrap(err, apiErrors.ErrInvalidAccountID, "Ad account "+id+" was not found or is not accessible.")
		}
		return nil, err
	}
	return account, nil
}
