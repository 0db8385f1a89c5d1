package facades

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrInvalidAddress is returned when a recipient is not a valid public key.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInsufficientSOL is returned when the sender cannot pay network fees.
	ErrInsufficientSOL = errors.New("insufficient SOL for transaction fees")
	// ErrInsufficientTokenBalance is returned when the sender holds too few tokens.
	ErrInsufficientTokenBalance = errors.New("insufficient token balance")
)

// ExpiredError is returned when a submitted transfer's validity window passed
// before the node acknowledged it. The transfer may still have landed.
type ExpiredError struct {
	Signature string
	Err       error
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("signature %s has expired: block height exceeded: %v", e.Signature, e.Err)
}

func (e *ExpiredError) Unwrap() error { return e.Err }

// SolanaRPC is the subset of the Solana JSON-RPC client used by the facade.
type SolanaRPC interface {
	GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	GetTokenAccountBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetTokenAccountBalanceResult, error)
	GetTokenSupply(ctx context.Context, tokenMint solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetTokenSupplyResult, error)
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
	RPCCallForInto(ctx context.Context, out interface{}, method string, params []interface{}) error
}

// LedgerOptions tunes query retries and network sampling.
type LedgerOptions struct {
	QueryRetries    int
	QueryRetryDelay time.Duration
	SampleCount     int
}

// LedgerRPCFacade implements the ledger capabilities over Solana JSON-RPC.
type LedgerRPCFacade struct {
	client SolanaRPC
	sender solana.PrivateKey
	mint   solana.PublicKey
	opts   LedgerOptions
	log    *zap.SugaredLogger
}

// NewLedgerRPCFacade creates a new facade sending from the given key and moving the given mint.
func NewLedgerRPCFacade(client SolanaRPC, sender solana.PrivateKey, mint solana.PublicKey, opts LedgerOptions, log *zap.SugaredLogger) *LedgerRPCFacade {
	if opts.QueryRetries < 1 {
		opts.QueryRetries = 1
	}
	if opts.SampleCount < 1 {
		opts.SampleCount = 10
	}
	return &LedgerRPCFacade{client: client, sender: sender, mint: mint, opts: opts, log: log}
}

// NativeBalance returns the sender's balance in lamports.
func (f *LedgerRPCFacade) NativeBalance(ctx context.Context) (uint64, error) {
	resp, err := f.client.GetBalance(ctx, f.sender.PublicKey(), rpc.CommitmentConfirmed)
	if err != nil {
		f.log.Errorw("failed to fetch SOL balance", "error", err)
		return 0, fmt.Errorf("SOL balance check failed: %w", err)
	}
	return resp.Value, nil
}

// TokenBalance returns the sender's token balance in base units.
func (f *LedgerRPCFacade) TokenBalance(ctx context.Context) (uint64, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(f.sender.PublicKey(), f.mint)
	if err != nil {
		return 0, err
	}

	resp, err := f.client.GetTokenAccountBalance(ctx, ata, rpc.CommitmentConfirmed)
	if err != nil {
		if isAccountMissing(err) {
			return 0, nil
		}
		f.log.Errorw("failed to fetch token balance", "account", ata.String(), "error", err)
		return 0, fmt.Errorf("token balance check failed: %w", err)
	}
	if resp.Value == nil {
		return 0, nil
	}

	var amount uint64
	if _, err := fmt.Sscan(resp.Value.Amount, &amount); err != nil {
		return 0, fmt.Errorf("token balance check failed: %w", err)
	}
	return amount, nil
}

// TokenDecimals returns the mint's declared decimal precision.
func (f *LedgerRPCFacade) TokenDecimals(ctx context.Context) (uint8, error) {
	resp, err := f.client.GetTokenSupply(ctx, f.mint, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch decimals: %w", err)
	}
	if resp.Value == nil {
		return 0, errors.New("failed to fetch decimals: empty token supply")
	}
	return resp.Value.Decimals, nil
}

// SubmitTransfer sends amount base units to the recipient, creating the
// recipient's token account in the same transaction when it is missing.
// It returns the transaction signature once the node accepts it.
func (f *LedgerRPCFacade) SubmitTransfer(ctx context.Context, recipient string, amount uint64, decimals uint8) (string, error) {
	recipientKey, err := solana.PublicKeyFromBase58(recipient)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, recipient)
	}

	payer := f.sender.PublicKey()
	senderATA, _, err := solana.FindAssociatedTokenAddress(payer, f.mint)
	if err != nil {
		return "", err
	}
	recipientATA, _, err := solana.FindAssociatedTokenAddress(recipientKey, f.mint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	var instructions []solana.Instruction

	if _, err := f.client.GetAccountInfo(ctx, recipientATA); err != nil {
		if !errors.Is(err, rpc.ErrNotFound) {
			return "", fmt.Errorf("recipient account lookup failed: %w", err)
		}
		f.log.Infow("recipient token account does not exist, creating it", "recipient", recipient)
		instructions = append(instructions,
			associatedtokenaccount.NewCreateInstruction(payer, recipientKey, f.mint).Build(),
		)
	}

	instructions = append(instructions,
		token.NewTransferCheckedInstruction(amount, decimals, senderATA, f.mint, recipientATA, payer, []solana.PublicKey{}).Build(),
	)

	recent, err := f.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to fetch recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, recent.Value.Blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return "", err
	}
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payer) {
			return &f.sender
		}
		return nil
	}); err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}
	signature := tx.Signatures[0].String()

	maxRetries := uint(5)
	sig, err := f.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentConfirmed,
		MaxRetries:          &maxRetries,
	})
	if err != nil {
		f.log.Errorw("transaction submission failed", "signature", signature, "error", err)
		return "", classifySendError(signature, err)
	}

	f.log.Infow("transaction submitted", "signature", sig.String(), "recipient", recipient, "amount", amount)
	return sig.String(), nil
}

// TransactionOutcome reports whether the transaction is pending, confirmed or failed.
// Transport errors are retried locally before being returned.
func (f *LedgerRPCFacade) TransactionOutcome(ctx context.Context, ref string) (models.Outcome, error) {
	sig, err := solana.SignatureFromBase58(ref)
	if err != nil {
		return "", fmt.Errorf("invalid transaction reference %q: %w", ref, err)
	}

	var resp *rpc.GetSignatureStatusesResult
	err = f.retry(ctx, func() error {
		var callErr error
		resp, callErr = f.client.GetSignatureStatuses(ctx, true, sig)
		return callErr
	})
	if err != nil {
		return "", fmt.Errorf("transaction status check failed: %w", err)
	}

	if resp == nil || len(resp.Value) == 0 || resp.Value[0] == nil {
		f.log.Debugw("transaction not found on chain yet, considering pending", "signature", ref)
		return models.OutcomePending, nil
	}

	status := resp.Value[0]
	if status.Err != nil {
		f.log.Warnw("transaction failed on chain", "signature", ref, "error", status.Err)
		return models.OutcomeFailed, nil
	}

	switch status.ConfirmationStatus {
	case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
		return models.OutcomeConfirmed, nil
	default:
		return models.OutcomePending, nil
	}
}

// perfSample mirrors a getRecentPerformanceSamples entry.
type perfSample struct {
	NumTransactions           uint64  `json:"numTransactions"`
	NumSuccessfulTransactions *uint64 `json:"numSuccessfulTransactions"`
	SamplePeriodSecs          uint16  `json:"samplePeriodSecs"`
}

// RecentPerformance returns the most recent network performance samples.
func (f *LedgerRPCFacade) RecentPerformance(ctx context.Context) ([]models.PerformanceSample, error) {
	var raw []perfSample
	if err := f.client.RPCCallForInto(ctx, &raw, "getRecentPerformanceSamples", []interface{}{f.opts.SampleCount}); err != nil {
		return nil, fmt.Errorf("performance samples query failed: %w", err)
	}

	samples := make([]models.PerformanceSample, 0, len(raw))
	for _, s := range raw {
		sample := models.PerformanceSample{
			NumTransactions:  s.NumTransactions,
			SamplePeriodSecs: s.SamplePeriodSecs,
		}
		if s.NumSuccessfulTransactions != nil {
			sample.NumSuccessfulTransactions = *s.NumSuccessfulTransactions
			sample.SuccessReported = true
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// retry runs fn up to QueryRetries times with a fixed delay between attempts.
func (f *LedgerRPCFacade) retry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= f.opts.QueryRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		f.log.Warnw("ledger query failed", "attempt", attempt, "max_attempts", f.opts.QueryRetries, "error", err)

		if attempt == f.opts.QueryRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(f.opts.QueryRetryDelay):
		}
	}
	return err
}

func isAccountMissing(err error) bool {
	msg := strings.ToLower(err.Error())
	return errors.Is(err, rpc.ErrNotFound) ||
		strings.Contains(msg, "could not find account") ||
		strings.Contains(msg, "account not found")
}

// classifySendError maps a send failure to the facade's error kinds.
func classifySendError(signature string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "block height exceeded"),
		strings.Contains(msg, "blockhash not found"),
		errors.Is(err, context.DeadlineExceeded):
		return &ExpiredError{Signature: signature, Err: err}
	case strings.Contains(msg, "insufficient lamports"),
		strings.Contains(msg, "insufficient funds for fee"),
		strings.Contains(msg, "no record of a prior credit"):
		return fmt.Errorf("%w: %v", ErrInsufficientSOL, err)
	case strings.Contains(msg, "insufficient funds"):
		return fmt.Errorf("%w: %v", ErrInsufficientTokenBalance, err)
	case strings.Contains(msg, "invalid account"),
		strings.Contains(msg, "invalid address"):
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	default:
		return fmt.Errorf("transaction failed: %w", err)
	}
}
